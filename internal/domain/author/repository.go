package author

import "context"

// Repository 作者仓储接口
// Save在姓名与其他作者冲突时返回DUPLICATE_AUTHOR_NAME,检查与写入是原子的
type Repository interface {
	// Save 新增或更新作者
	Save(ctx context.Context, a *Author) error

	// FindByID 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id ID) (*Author, error)

	// FindAll 按创建顺序返回全部作者
	FindAll(ctx context.Context) ([]*Author, error)

	Delete(ctx context.Context, id ID) error

	// NameExists 判断除exclude外是否已有同名作者,exclude为空表示不排除
	NameExists(ctx context.Context, name Name, exclude ID) (bool, error)
}

// BookChecker 判断作者名下是否还有图书
// 由图书仓储实现,避免author包依赖book包
type BookChecker interface {
	HasBooksByAuthor(ctx context.Context, authorID ID) (bool, error)
}
