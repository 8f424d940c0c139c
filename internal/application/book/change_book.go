package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// ChangeBookTitleUseCase 修改书名
type ChangeBookTitleUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewChangeBookTitleUseCase(books book.Repository, publisher event.Publisher) *ChangeBookTitleUseCase {
	return &ChangeBookTitleUseCase{books: books, publisher: publisher}
}

type ChangeBookTitleRequest struct {
	BookID string
	Title  string
}

func (uc *ChangeBookTitleUseCase) Execute(ctx context.Context, req ChangeBookTitleRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	title, err := book.NewTitle(req.Title)
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, b.ChangeTitle(title))
}

// ChangeBookISBNUseCase 修改ISBN
// 先由领域服务校验唯一性(排除自身),再修改聚合
type ChangeBookISBNUseCase struct {
	books     book.Repository
	service   book.Service
	publisher event.Publisher
}

func NewChangeBookISBNUseCase(books book.Repository, service book.Service, publisher event.Publisher) *ChangeBookISBNUseCase {
	return &ChangeBookISBNUseCase{books: books, service: service, publisher: publisher}
}

type ChangeBookISBNRequest struct {
	BookID string
	ISBN   string
}

func (uc *ChangeBookISBNUseCase) Execute(ctx context.Context, req ChangeBookISBNRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	isbn, err := book.NewISBN(req.ISBN)
	if err != nil {
		return err
	}
	if err := uc.service.VerifyISBNUniqueness(ctx, isbn, b.ID()); err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, b.ChangeISBN(isbn))
}

// ChangeBookSummaryUseCase 修改简介
type ChangeBookSummaryUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewChangeBookSummaryUseCase(books book.Repository, publisher event.Publisher) *ChangeBookSummaryUseCase {
	return &ChangeBookSummaryUseCase{books: books, publisher: publisher}
}

type ChangeBookSummaryRequest struct {
	BookID  string
	Summary string
}

func (uc *ChangeBookSummaryUseCase) Execute(ctx context.Context, req ChangeBookSummaryRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	summary, err := book.NewSummary(req.Summary)
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, b.ChangeSummary(summary))
}

// saveAndPublish 没有事件说明聚合未变化,直接返回
func saveAndPublish(ctx context.Context, books book.Repository, publisher event.Publisher, b *book.Book, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := books.Save(ctx, b); err != nil {
		return err
	}
	publisher.Publish(ctx, events)
	return nil
}
