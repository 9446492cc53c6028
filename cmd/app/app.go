package app

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charity-events/fundraiser-api/internal/api"
	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/feed"
	"github.com/charity-events/fundraiser-api/internal/cache"
	"github.com/charity-events/fundraiser-api/internal/config"
	"github.com/charity-events/fundraiser-api/internal/db"
	"github.com/charity-events/fundraiser-api/internal/logger"
	"github.com/charity-events/fundraiser-api/internal/queue"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
	"github.com/charity-events/fundraiser-api/internal/service"
)

type publisher interface {
	service.Publisher
	Close() error
}

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if conf.API.LogLevel != "" {
		if err = logger.SetLevel(conf.API.LogLevel); err != nil {
			return fmt.Errorf("failed to set log level -> %w", err)
		}
	}

	conf.Watch(func(newConf *config.AppConfig, e fsnotify.Event) {
		if err := logger.SetLevel(newConf.API.LogLevel); err != nil {
			zap.L().Warn("config reload: invalid log level", zap.String("level", newConf.API.LogLevel), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded, settings other than log_level apply after a restart", zap.String("file", e.Name))
	})

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := cache.NewRedisClient(ctx, conf.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}
	listings := cache.NewListingCache(redisClient, conf.Redis.ListingTTL, service.ListingKeys)

	pub := openPublisher(conf.RabbitMQ)
	defer pub.Close()

	hub := feed.NewHub()
	go hub.Run(ctx)

	s := api.NewServer(conf, api.Dependencies{
		DB:        postgresDB,
		Listings:  listings,
		Publisher: pub,
		Feed:      hub,
	})

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openPublisher falls back to a no-op publisher when the broker is not
// configured or unreachable.
func openPublisher(conf config.RabbitMQConfig) publisher {
	if conf.URL == "" {
		zap.L().Info("rabbitmq disabled: no url configured")
		return queue.Noop{}
	}

	pub, err := queue.NewPublisher(conf.URL, conf.Queue)
	if err != nil {
		zap.L().Warn("rabbitmq unavailable, ticket events will not be published", zap.Error(err))
		return queue.Noop{}
	}

	return pub
}
