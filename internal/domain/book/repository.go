package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现(内存、MySQL)
type Repository interface {
	// Save 新增或整体更新图书(含分类和书评)
	// ISBN与其他图书冲突时返回DUPLICATE_ISBN,检查与写入是原子的
	Save(ctx context.Context, b *Book) error

	// FindByID 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id ID) (*Book, error)

	// FindAll 按创建顺序返回全部图书
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByAuthor 返回作者名下全部图书,没有时返回空切片
	FindByAuthor(ctx context.Context, authorID author.ID) ([]*Book, error)

	Delete(ctx context.Context, id ID) error

	// ISBNExists 判断除exclude外是否已有相同ISBN的图书
	ISBNExists(ctx context.Context, isbn ISBN, exclude ID) (bool, error)

	// HasBooksByAuthor 作者名下是否还有图书
	HasBooksByAuthor(ctx context.Context, authorID author.ID) (bool, error)
}
