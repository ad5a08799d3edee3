package routes

import (
	"black-bears-backend/internal/api/handlers"
	"black-bears-backend/internal/api/middleware"
	"black-bears-backend/internal/config"
	"black-bears-backend/internal/repository"
	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	gameRepo := repository.NewGameRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, validator)
	teamService := service.NewTeamService(teamRepo, validator)
	gameService := service.NewGameService(gameRepo, teamRepo, validator)
	newsService := service.NewNewsService(newsRepo, validator)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, teamRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameHandler := handlers.NewGameHandler(gameService)
	newsHandler := handlers.NewNewsHandler(newsService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Root welcome route
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Добро пожаловать на API сайта Black Bears Basketball!",
		})
	})

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Player routes
		players := v1.Group("/players")
		{
			players.GET("/", playerHandler.ListPlayers)
			players.POST("/", playerHandler.CreatePlayer)
			players.GET("/:id", playerHandler.GetPlayer)
			players.PUT("/:id", playerHandler.UpdatePlayer)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/", teamHandler.ListTeams)
			teams.POST("/", teamHandler.CreateTeam)
			teams.GET("/standings/:gender", teamHandler.GetStandings)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/stats", teamHandler.GetTeamStats)
			teams.PUT("/:id/position", teamHandler.UpdateTeamPosition)
		}

		// Game routes
		games := v1.Group("/games")
		{
			games.GET("/", gameHandler.ListGames)
			games.POST("/", gameHandler.CreateGame)
			games.GET("/upcoming", gameHandler.UpcomingGames)
			games.GET("/results", gameHandler.GameResults)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", gameHandler.UpdateGame)
		}

		// News routes
		news := v1.Group("/news")
		{
			news.GET("/", newsHandler.ListNews)
			news.POST("/", newsHandler.CreateNews)
			news.GET("/tags/", newsHandler.ListTags)
			news.GET("/:id", newsHandler.GetNews)
			news.PUT("/:id", newsHandler.UpdateNews)
		}

		// Leaderboard routes
		leaderboard := v1.Group("/leaderboard")
		{
			leaderboard.GET("/", leaderboardHandler.ListLeaderboard)
			leaderboard.POST("/", leaderboardHandler.CreateLeaderboardEntry)
			leaderboard.POST("/rebuild", leaderboardHandler.RebuildLeaderboard)
			leaderboard.PUT("/:id", leaderboardHandler.UpdateLeaderboardEntry)
			leaderboard.DELETE("/:id", leaderboardHandler.DeleteLeaderboardEntry)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
