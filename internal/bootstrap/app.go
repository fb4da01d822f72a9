package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"postline/internal/config"
	"postline/internal/model"
	mysqlClient "postline/internal/platform/mysql"
	rabbitmqClient "postline/internal/platform/rabbitmq"
	redisClient "postline/internal/platform/redis"
	"postline/internal/repository"
	"postline/internal/worker"
)

type App struct {
	Config             *config.Config
	MySQL              *gorm.DB
	Redis              *redis.Client
	MQConn             *amqp.Connection
	NotificationWorker *worker.NotificationWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Subscription{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	subscriptionRepo := repository.NewSubscriptionRepository(mysqlDB)
	notificationRepo := repository.NewNotificationRepository(mysqlDB)
	notificationWorker := worker.NewNotificationWorker(
		mqConn,
		subscriptionRepo,
		notificationRepo,
		cfg.RabbitMQ.PostEventQueue,
	)
	if err := notificationWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start notification worker failed: %w", err)
	}

	return &App{
		Config:             cfg,
		MySQL:              mysqlDB,
		Redis:              redisCli,
		MQConn:             mqConn,
		NotificationWorker: notificationWorker,
		StartedAt:          time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.NotificationWorker != nil {
		a.NotificationWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
