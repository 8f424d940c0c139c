package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/domain/shared"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/eventbus"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/infrastructure/seed"
	"github.com/xiebiao/bookshelf/pkg/jwt"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// storage 按storage.driver选择的仓储实现
type storage struct {
	books   book.Repository
	authors author.Repository
	checker author.BookChecker
}

// provideStorage 创建仓储
// memory:进程内map;mysql:gorm连接 + 自动迁移
func provideStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (*storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		db, err := mysql.NewDB(ctx, cfg.Database, cfg.Server.Mode, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		tx := mysql.NewTxManager(db)
		bookRepo := mysql.NewBookRepository(db, tx)
		return &storage{
			books:   bookRepo,
			authors: mysql.NewAuthorRepository(db, tx),
			checker: bookRepo,
		}, cleanup, nil

	default:
		bookRepo := memory.NewBookRepository()
		return &storage{
			books:   bookRepo,
			authors: memory.NewAuthorRepository(),
			checker: bookRepo,
		}, func() {}, nil
	}
}

func provideBookRepository(s *storage) book.Repository { return s.books }

func provideAuthorRepository(s *storage) author.Repository { return s.authors }

func provideBookChecker(s *storage) author.BookChecker { return s.checker }

// providePublisher 按events.sinks组装事件总线
// 远程sink连接失败直接返回错误,运行期失败由熔断器兜底
func providePublisher(ctx context.Context, cfg *config.Config, clock shared.Clock, log *zap.Logger) (event.Publisher, func(), error) {
	var sinks []eventbus.Sink
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Events.Enabled(config.SinkLog) {
		sinks = append(sinks, eventbus.NewLogSink(log))
	}

	if cfg.Events.Enabled(config.SinkRedis) {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { client.Close() })
		sinks = append(sinks, eventbus.WithBreaker(
			eventbus.NewRedisSink(client, cfg.Events.RedisChannel), cfg.Events.Breaker, log))
	}

	if cfg.Events.Enabled(config.SinkAMQP) {
		pub, err := mq.NewPublisher(cfg.Events.AMQP.URL, cfg.Events.AMQP.Exchange, cfg.Events.AMQP.ExchangeType)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { pub.Close() })
		sinks = append(sinks, eventbus.WithBreaker(
			eventbus.NewAMQPSink(pub), cfg.Events.Breaker, log))
	}

	bus := eventbus.NewBus(log, sinks...)
	log.Info("Event sinks ready", zap.Strings("sinks", bus.Sinks()))
	return event.Stamped(bus, clock), cleanup, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpire)
}

func provideServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// app 组装完成的应用
type app struct {
	server *http.Server
	seeder *seed.Seeder
}

func newApp(server *http.Server, seeder *seed.Seeder) *app {
	return &app{server: server, seeder: seeder}
}
