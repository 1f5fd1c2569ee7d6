package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"friends-corner/internal/config"
	"friends-corner/internal/handler"
	"friends-corner/internal/logger"
	"friends-corner/internal/middleware"
	"friends-corner/internal/service"
	"friends-corner/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.InitSchema(context.Background()); err != nil {
		slog.Error("schema init failed", "err", err)
		os.Exit(1)
	}

	photoSvc := service.NewPhotoService(st)
	songSvc := service.NewSongService(st)
	memberSvc := service.NewMemberService(st)
	memorySvc := service.NewMemoryService(st)
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.PasswordHash, []byte(cfg.Server.JWTSecret))

	photoH := handler.NewPhotoHandler(photoSvc)
	songH := handler.NewSongHandler(songSvc)
	memberH := handler.NewMemberHandler(memberSvc)
	memoryH := handler.NewMemoryHandler(memorySvc)
	authH := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "friends-corner"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/photos", photoH.List)
	api.GET("/photos/:id", photoH.Get)
	api.POST("/upload", photoH.Upload)
	api.GET("/songs", songH.List)
	api.GET("/songs/:id", songH.Get)
	api.POST("/songs/upload", songH.Upload)
	api.GET("/members", memberH.List)
	api.GET("/memories", memoryH.List)
	api.POST("/admin/login", authH.Login)

	admin := api.Group("/admin", middleware.AdminAuth([]byte(cfg.Server.JWTSecret)))
	admin.GET("/photos", photoH.AdminList)
	admin.POST("/photos/:id/approve", photoH.Approve)
	admin.DELETE("/photos/:id", photoH.Delete)
	admin.GET("/songs", songH.AdminList)
	admin.POST("/songs/:id/approve", songH.Approve)
	admin.DELETE("/songs/:id", songH.Delete)
	admin.POST("/members", memberH.Create)
	admin.PUT("/members/:id", memberH.Update)
	admin.DELETE("/members/:id", memberH.Delete)
	admin.POST("/memories", memoryH.Create)
	admin.PUT("/memories/:id", memoryH.Update)
	admin.DELETE("/memories/:id", memoryH.Delete)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
