package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/shared"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/idgen"
	"github.com/xiebiao/bookshelf/internal/infrastructure/logger"
	"github.com/xiebiao/bookshelf/internal/infrastructure/seed"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// @title                       Bookshelf API
// @version                     1.0
// @description                 图书与作者目录服务
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 格式: Bearer <token>,可用cmd/token签发

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	zlog.Info("Config loaded",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("storage", cfg.Storage.Driver),
		zap.Strings("event_sinks", cfg.Events.Sinks),
	)

	// 3. 监控与链路追踪
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			zlog.Fatal("Failed to init tracer", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				zlog.Warn("Failed to flush spans", zap.Error(err))
			}
		}()
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 4. 依赖注入(手动组装,wire.go声明了同一张依赖图)
	// Repository ← Service ← UseCase ← Handler
	ctx := context.Background()
	application, cleanup, err := buildApp(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to build application", zap.Error(err))
	}
	defer cleanup()

	// 5. 示例数据
	if cfg.Seed.Enabled {
		if _, err := application.seeder.Run(ctx); err != nil {
			zlog.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	// 6. 启动服务,收到SIGINT/SIGTERM后优雅退出
	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", application.server.Addr))
		if err := application.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := application.server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// buildApp 手动组装依赖
func buildApp(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*app, func(), error) {
	// 基础设施层
	clock := shared.SystemClock{}
	store, closeStorage, err := provideStorage(ctx, cfg, zlog)
	if err != nil {
		return nil, nil, err
	}
	publisher, closePublisher, err := providePublisher(ctx, cfg, clock, zlog)
	if err != nil {
		closeStorage()
		return nil, nil, err
	}
	cleanup := func() {
		closePublisher()
		closeStorage()
	}

	bookRepo := provideBookRepository(store)
	authorRepo := provideAuthorRepository(store)
	ids := idgen.New()

	// 领域层
	bookService := book.NewService(bookRepo, ids, clock)
	authorService := author.NewService(authorRepo, provideBookChecker(store), ids)

	// 应用层
	bookUseCases := appbook.NewUseCases(bookRepo, authorRepo, bookService, publisher)
	authorUseCases := appauthor.NewUseCases(authorRepo, authorService, publisher)

	// 接口层
	engine := router.New(cfg, zlog,
		middleware.NewAuthMiddleware(provideJWTManager(cfg)),
		handler.NewBookHandler(bookUseCases),
		handler.NewAuthorHandler(authorUseCases, bookUseCases),
	)

	return newApp(
		provideServer(cfg, engine),
		seed.New(authorUseCases, bookUseCases, zlog),
	), cleanup, nil
}
