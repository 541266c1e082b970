package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ivcho02/mechanic-api/internal/cache"
	"github.com/ivcho02/mechanic-api/internal/config"
	dbpkg "github.com/ivcho02/mechanic-api/internal/db"
	"github.com/ivcho02/mechanic-api/internal/logging"
	"github.com/ivcho02/mechanic-api/internal/quote"
	"github.com/ivcho02/mechanic-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New()

	db := dbpkg.NewPostgres(cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoDB, err := dbpkg.NewMongo(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}

	catalog := cache.NewCatalog(cfg.RedisAddr)

	archiver, err := quote.NewArchiver(ctx, quote.ArchiveConfig{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKeyID:  cfg.S3AccessKeyID,
		SecretKey:    cfg.S3SecretKey,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to configure quote archive")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, mongoDB, cfg, log, catalog, archiver)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
