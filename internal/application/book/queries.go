package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// GetBookByIDUseCase 按ID查询图书,不存在返回BOOK_NOT_FOUND
type GetBookByIDUseCase struct {
	books book.Repository
}

func NewGetBookByIDUseCase(books book.Repository) *GetBookByIDUseCase {
	return &GetBookByIDUseCase{books: books}
}

func (uc *GetBookByIDUseCase) Execute(ctx context.Context, bookID string) (*BookReadModel, error) {
	b, err := uc.books.FindByID(ctx, book.ID(bookID))
	if err != nil {
		return nil, err
	}
	rm := ToReadModel(b)
	return &rm, nil
}

// ListBooksUseCase 查询全部图书,没有数据时返回空列表
type ListBooksUseCase struct {
	books book.Repository
}

func NewListBooksUseCase(books book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{books: books}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookReadModel, error) {
	books, err := uc.books.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toReadModels(books), nil
}

// GetBooksByAuthorUseCase 查询作者名下图书
// 作者不存在时同样返回空列表
type GetBooksByAuthorUseCase struct {
	books book.Repository
}

func NewGetBooksByAuthorUseCase(books book.Repository) *GetBooksByAuthorUseCase {
	return &GetBooksByAuthorUseCase{books: books}
}

func (uc *GetBooksByAuthorUseCase) Execute(ctx context.Context, authorID string) ([]BookReadModel, error) {
	books, err := uc.books.FindByAuthor(ctx, author.ID(authorID))
	if err != nil {
		return nil, err
	}
	return toReadModels(books), nil
}
