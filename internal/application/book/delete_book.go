package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// DeleteBookUseCase 删除图书,书评随聚合一并删除
type DeleteBookUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewDeleteBookUseCase(books book.Repository, publisher event.Publisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{books: books, publisher: publisher}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID string) error {
	b, err := uc.books.FindByID(ctx, book.ID(bookID))
	if err != nil {
		return err
	}
	if err := uc.books.Delete(ctx, b.ID()); err != nil {
		return err
	}
	uc.publisher.Publish(ctx, []event.Event{book.NewBookDeleted(b)})
	return nil
}
