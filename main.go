package main

import (
	"fmt"
	"log"

	"github.com/ScheffChuk/drive-t3-s/blobstore"
	"github.com/ScheffChuk/drive-t3-s/config"
	"github.com/ScheffChuk/drive-t3-s/database"
	"github.com/ScheffChuk/drive-t3-s/handlers"
	"github.com/ScheffChuk/drive-t3-s/logger"
	"github.com/ScheffChuk/drive-t3-s/middleware"
	"github.com/ScheffChuk/drive-t3-s/models"
	"github.com/ScheffChuk/drive-t3-s/repositories"
	"github.com/ScheffChuk/drive-t3-s/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting drive service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Logging.Level)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	if err := database.DB.AutoMigrate(
		&models.Folder{},
		&models.File{},
	); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB, database.RedisClient).BuildContainer()
	blobClient := blobstore.NewHTTPClient(&cfg.Blob)
	serviceContainer := services.NewContainer(repoContainer, blobClient)
	handlers.SetServices(serviceContainer)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	setupRoutes(r, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine, cfg *config.Config) {
	api := r.Group("/api")

	if cfg.Health.Enabled {
		api.GET("/health", handlers.HealthCheck)
	}

	// The blob service calls back with its own shared token, not a user
	// session.
	api.POST("/uploads/callback", handlers.UploadCallback)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/folders", handlers.ListFolders)
		protected.GET("/folders/root", handlers.GetRootFolder)
		protected.GET("/folders/:id/ancestors", handlers.ListFolderAncestors)
		protected.POST("/folders", handlers.CreateFolder)
		protected.DELETE("/folders/:id", handlers.DeleteFolder)

		protected.GET("/files", handlers.ListFiles)
		protected.DELETE("/files/:id", handlers.DeleteFile)

		protected.GET("/revision", handlers.GetRevision)
	}
}
