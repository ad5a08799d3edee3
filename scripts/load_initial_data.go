package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"black-bears-backend/internal/config"
	"black-bears-backend/internal/database"
	"black-bears-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures match the YAML files under seed_data/.

type TeamData struct {
	Name           string `yaml:"name"`
	Gender         string `yaml:"gender"`
	LogoURL        string `yaml:"logo_url,omitempty"`
	GamesPlayed    int    `yaml:"games_played"`
	Wins           int    `yaml:"wins"`
	Losses         int    `yaml:"losses"`
	PointsScored   int    `yaml:"points_scored"`
	PointsConceded int    `yaml:"points_conceded"`
	Position       *int   `yaml:"position,omitempty"`
}

type PlayerData struct {
	FirstName string  `yaml:"first_name"`
	LastName  string  `yaml:"last_name"`
	Gender    string  `yaml:"gender"`
	Number    int     `yaml:"number"`
	Position  string  `yaml:"position"`
	Height    float64 `yaml:"height"`
	Weight    float64 `yaml:"weight"`
	BirthDate string  `yaml:"birth_date"`
	Biography string  `yaml:"biography,omitempty"`
	ImageURL  string  `yaml:"image_url,omitempty"`

	GamesPlayed   int `yaml:"games_played"`
	TotalPoints   int `yaml:"total_points"`
	TotalRebounds int `yaml:"total_rebounds"`
	TotalAssists  int `yaml:"total_assists"`
	TotalSteals   int `yaml:"total_steals"`
	TotalBlocks   int `yaml:"total_blocks"`
}

type GameData struct {
	Gender          string `yaml:"gender"`
	TeamName        string `yaml:"team_name"`
	DateTime        string `yaml:"date_time"`
	Location        string `yaml:"location"`
	IsHomeGame      bool   `yaml:"is_home_game"`
	ScoreBlackBears *int   `yaml:"score_black_bears,omitempty"`
	ScoreOpponent   *int   `yaml:"score_opponent,omitempty"`
}

type NewsData struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	ImageURL string   `yaml:"image_url,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

type SeedFile struct {
	Teams   []TeamData   `yaml:"teams"`
	Players []PlayerData `yaml:"players"`
	Games   []GameData   `yaml:"games"`
	News    []NewsData   `yaml:"news"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatalf("initialize database: %v", err)
	}

	dir := "seed_data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	seed, err := loadSeedDir(dir)
	if err != nil {
		log.Fatalf("load seed data: %v", err)
	}

	if err := apply(db, seed); err != nil {
		log.Fatalf("apply seed data: %v", err)
	}

	log.Printf("Seeded %d teams, %d players, %d games, %d news items",
		len(seed.Teams), len(seed.Players), len(seed.Games), len(seed.News))
}

// loadSeedDir merges every *.yaml file in the directory into one SeedFile.
func loadSeedDir(dir string) (*SeedFile, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no seed files found in %s", dir)
	}

	merged := &SeedFile{}
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var f SeedFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		merged.Teams = append(merged.Teams, f.Teams...)
		merged.Players = append(merged.Players, f.Players...)
		merged.Games = append(merged.Games, f.Games...)
		merged.News = append(merged.News, f.News...)
	}
	return merged, nil
}

func apply(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, t := range seed.Teams {
			team := models.Team{
				Name:            t.Name,
				Gender:          models.Gender(t.Gender),
				LogoURL:         t.LogoURL,
				GamesPlayed:     t.GamesPlayed,
				Wins:            t.Wins,
				Losses:          t.Losses,
				PointsScored:    t.PointsScored,
				PointsConceded:  t.PointsConceded,
				CurrentPosition: t.Position,
			}
			team.Recalculate()
			if err := tx.Where("name = ?", team.Name).FirstOrCreate(&team).Error; err != nil {
				return fmt.Errorf("team %s: %w", t.Name, err)
			}
		}

		for _, p := range seed.Players {
			birthDate, err := time.Parse("2006-01-02", p.BirthDate)
			if err != nil {
				return fmt.Errorf("player %s %s: bad birth_date %q", p.FirstName, p.LastName, p.BirthDate)
			}
			player := models.Player{
				FirstName:     p.FirstName,
				LastName:      p.LastName,
				Gender:        models.Gender(p.Gender),
				Number:        p.Number,
				Position:      p.Position,
				Height:        p.Height,
				Weight:        p.Weight,
				BirthDate:     birthDate,
				Biography:     p.Biography,
				ImageURL:      p.ImageURL,
				GamesPlayed:   p.GamesPlayed,
				TotalPoints:   p.TotalPoints,
				TotalRebounds: p.TotalRebounds,
				TotalAssists:  p.TotalAssists,
				TotalSteals:   p.TotalSteals,
				TotalBlocks:   p.TotalBlocks,
			}
			if err := tx.Where("first_name = ? AND last_name = ?", p.FirstName, p.LastName).
				FirstOrCreate(&player).Error; err != nil {
				return fmt.Errorf("player %s %s: %w", p.FirstName, p.LastName, err)
			}
		}

		for _, g := range seed.Games {
			dt, err := time.Parse(time.RFC3339, g.DateTime)
			if err != nil {
				return fmt.Errorf("game for %s: bad date_time %q", g.TeamName, g.DateTime)
			}
			game := models.Game{
				Gender:          models.Gender(g.Gender),
				TeamName:        g.TeamName,
				DateTime:        dt,
				Location:        g.Location,
				IsHomeGame:      g.IsHomeGame,
				ScoreBlackBears: g.ScoreBlackBears,
				ScoreOpponent:   g.ScoreOpponent,
			}
			if err := tx.Where("team_name = ? AND date_time = ?", g.TeamName, dt).
				FirstOrCreate(&game).Error; err != nil {
				return fmt.Errorf("game for %s at %s: %w", g.TeamName, g.DateTime, err)
			}
		}

		for _, n := range seed.News {
			var tags []models.Tag
			for _, name := range n.Tags {
				tag := models.Tag{Name: name}
				if err := tx.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
					return fmt.Errorf("tag %s: %w", name, err)
				}
				tags = append(tags, tag)
			}
			item := models.News{
				Title:    n.Title,
				Content:  n.Content,
				ImageURL: n.ImageURL,
				Tags:     tags,
			}
			if err := tx.Where("title = ?", n.Title).FirstOrCreate(&item).Error; err != nil {
				return fmt.Errorf("news %s: %w", n.Title, err)
			}
		}

		return nil
	})
}
