package service

const (
	defaultLimit = 100
	maxLimit     = 500

	defaultUpcomingLimit = 10
)

// normalizePage clamps skip/limit to deterministic bounds: negative skip
// becomes 0, out-of-range limit falls back to the default page size.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return skip, limit
}
