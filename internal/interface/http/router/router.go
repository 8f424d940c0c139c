// Package router 组装HTTP路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// New 创建Gin引擎并注册全部路由
// 查询接口公开,写操作需要Bearer Token
func New(
	cfg *config.Config,
	log *zap.Logger,
	authMiddleware *middleware.AuthMiddleware,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
) *gin.Engine {
	r := gin.New()
	// 按原始路径匹配,参数值再解码(如类型名"Sci%2FFi")
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Tracing(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 /swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, apperrors.ErrMethodNotAllowed)
	})

	auth := authMiddleware.RequireAuth()
	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", auth, bookHandler.CreateBook)
			books.PATCH("/:id/title", auth, bookHandler.ChangeTitle)
			books.PATCH("/:id/isbn", auth, bookHandler.ChangeISBN)
			books.PATCH("/:id/summary", auth, bookHandler.ChangeSummary)
			books.POST("/:id/genres", auth, bookHandler.AddGenre)
			books.DELETE("/:id/genres/:name", auth, bookHandler.RemoveGenre)
			books.POST("/:id/reviews", auth, bookHandler.AddReview)
			books.DELETE("/:id/reviews/:reviewId", auth, bookHandler.RemoveReview)
			books.DELETE("/:id", auth, bookHandler.DeleteBook)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.GET("/:id/books", authorHandler.ListAuthorBooks)

			authors.POST("", auth, authorHandler.CreateAuthor)
			authors.PATCH("/:id/name", auth, authorHandler.ChangeName)
			authors.PATCH("/:id/biography", auth, authorHandler.ChangeBiography)
			authors.DELETE("/:id", auth, authorHandler.DeleteAuthor)
		}
	}

	return r
}
