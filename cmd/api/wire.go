//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 与main.go中buildApp的手动组装是同一张依赖图,
// 运行 `wire gen ./cmd/api` 生成wire_gen.go后可替换buildApp

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/shared"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/idgen"
	"github.com/xiebiao/bookshelf/internal/infrastructure/seed"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 仓储、事件总线、ID生成与时钟
var infrastructureSet = wire.NewSet(
	provideStorage,
	provideBookRepository,
	provideAuthorRepository,
	provideBookChecker,
	providePublisher,
	idgen.New,
	wire.Bind(new(shared.IDGenerator), new(idgen.UUIDGenerator)),
	wire.Value(shared.SystemClock{}),
	wire.Bind(new(shared.Clock), new(shared.SystemClock)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	author.NewService,
)

// applicationSet 用例集合
var applicationSet = wire.NewSet(
	appbook.NewUseCases,
	appauthor.NewUseCases,
)

// interfaceSet HTTP层
var interfaceSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	router.New,
	provideServer,
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序关闭事件sink与数据库连接
func InitializeApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		seed.New,
		newApp,
	)
	return nil, nil, nil
}
