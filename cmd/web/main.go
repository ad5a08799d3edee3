package main

import (
	"context"
	"embed"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"black-bears-backend/internal/api/middleware"
	"black-bears-backend/internal/chat"
	"black-bears-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	relay := chat.NewRelay(chat.DefaultConfig())
	go relay.Start(ctx)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	router.GET("/ws", func(c *gin.Context) {
		if err := relay.Subscribe(c.Writer, c.Request); err != nil {
			logrus.WithError(err).Error("websocket subscribe failed")
		}
	})

	router.GET("/", func(c *gin.Context) {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	port := cfg.WebPort
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting web client on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start web client:", err)
	}
}
