package mysql

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 1. debug模式打印SQL(经zap输出),其他模式只记录慢查询
// 2. 配置连接池并测试连接
// 3. 自动迁移表结构
func NewDB(ctx context.Context, cfg config.DatabaseConfig, mode string, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.New(gormWriter{log.Sugar()}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}
	return db, nil
}

// AutoMigrate 迁移表结构
// 只创建表和添加字段,不删除现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&GenreModel{},
		&ReviewModel{},
	)
}

// gormWriter 把gorm日志转到zap
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debugf(format, args...)
}

// AuthorModel 作者表
// 姓名唯一索引使用utf8mb4_bin排序规则,与领域中区分大小写的比较一致
type AuthorModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	FirstName string    `gorm:"type:varchar(100) COLLATE utf8mb4_bin;not null;uniqueIndex:uk_author_name,priority:1;comment:名"`
	LastName  string    `gorm:"type:varchar(100) COLLATE utf8mb4_bin;not null;uniqueIndex:uk_author_name,priority:2;comment:姓"`
	Biography string    `gorm:"type:text;not null;comment:简介"`
	CreatedAt time.Time `gorm:"type:datetime(6);index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"type:datetime(6);comment:更新时间"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel 图书表
// isbn保存原始输入(含连字符),isbn_digits为13位数字,唯一索引建在isbn_digits上
type BookModel struct {
	ID            string        `gorm:"primaryKey;size:36"`
	AuthorID      string        `gorm:"size:36;not null;index;comment:作者ID"`
	Title         string        `gorm:"size:200;not null;comment:书名"`
	ISBN          string        `gorm:"column:isbn;size:32;not null;comment:ISBN原始值"`
	ISBNDigits    string        `gorm:"column:isbn_digits;size:13;not null;uniqueIndex;comment:ISBN-13数字"`
	Summary       string        `gorm:"type:text;not null;comment:简介"`
	PublishedYear int           `gorm:"not null;comment:出版年份"`
	PageCount     int           `gorm:"not null;comment:页数"`
	Genres        []GenreModel  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Reviews       []ReviewModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time     `gorm:"type:datetime(6);index;comment:创建时间"`
	UpdatedAt     time.Time     `gorm:"type:datetime(6);comment:更新时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// GenreModel 图书分类,position保持添加顺序
type GenreModel struct {
	ID       uint   `gorm:"primaryKey"`
	BookID   string `gorm:"size:36;not null;index;comment:图书ID"`
	Name     string `gorm:"size:50;not null;comment:分类名"`
	Position int    `gorm:"not null;comment:顺序"`
}

func (GenreModel) TableName() string {
	return "book_genres"
}

// ReviewModel 书评
type ReviewModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	BookID    string    `gorm:"size:36;not null;index;comment:图书ID"`
	Rating    int       `gorm:"type:tinyint;not null;comment:评分1-5"`
	Comment   string    `gorm:"type:text;not null;comment:评论"`
	Position  int       `gorm:"not null;comment:顺序"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null;comment:创建时间"`
}

func (ReviewModel) TableName() string {
	return "book_reviews"
}
