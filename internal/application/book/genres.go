package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// AddGenreToBookUseCase 添加分类
type AddGenreToBookUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewAddGenreToBookUseCase(books book.Repository, publisher event.Publisher) *AddGenreToBookUseCase {
	return &AddGenreToBookUseCase{books: books, publisher: publisher}
}

type GenreRequest struct {
	BookID string
	Genre  string
}

func (uc *AddGenreToBookUseCase) Execute(ctx context.Context, req GenreRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	genre, err := book.NewGenre(req.Genre)
	if err != nil {
		return err
	}
	events, err := b.AddGenre(genre)
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, events)
}

// RemoveGenreFromBookUseCase 移除分类
type RemoveGenreFromBookUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewRemoveGenreFromBookUseCase(books book.Repository, publisher event.Publisher) *RemoveGenreFromBookUseCase {
	return &RemoveGenreFromBookUseCase{books: books, publisher: publisher}
}

func (uc *RemoveGenreFromBookUseCase) Execute(ctx context.Context, req GenreRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	genre, err := book.NewGenre(req.Genre)
	if err != nil {
		return err
	}
	events, err := b.RemoveGenre(genre)
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, events)
}
