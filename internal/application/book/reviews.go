package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// AddReviewToBookUseCase 添加书评,返回书评ID
type AddReviewToBookUseCase struct {
	books     book.Repository
	service   book.Service
	publisher event.Publisher
}

func NewAddReviewToBookUseCase(books book.Repository, service book.Service, publisher event.Publisher) *AddReviewToBookUseCase {
	return &AddReviewToBookUseCase{books: books, service: service, publisher: publisher}
}

type AddReviewRequest struct {
	BookID  string
	Rating  int
	Comment string
}

type AddReviewResponse struct {
	ReviewID string `json:"review_id"`
}

func (uc *AddReviewToBookUseCase) Execute(ctx context.Context, req AddReviewRequest) (*AddReviewResponse, error) {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return nil, err
	}
	rating, err := book.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := book.NewReviewComment(req.Comment)
	if err != nil {
		return nil, err
	}
	reviewID, events, err := uc.service.AddReview(b, rating, comment)
	if err != nil {
		return nil, err
	}
	if err := saveAndPublish(ctx, uc.books, uc.publisher, b, events); err != nil {
		return nil, err
	}
	return &AddReviewResponse{ReviewID: reviewID.String()}, nil
}

// RemoveReviewFromBookUseCase 删除书评
type RemoveReviewFromBookUseCase struct {
	books     book.Repository
	publisher event.Publisher
}

func NewRemoveReviewFromBookUseCase(books book.Repository, publisher event.Publisher) *RemoveReviewFromBookUseCase {
	return &RemoveReviewFromBookUseCase{books: books, publisher: publisher}
}

type RemoveReviewRequest struct {
	BookID   string
	ReviewID string
}

func (uc *RemoveReviewFromBookUseCase) Execute(ctx context.Context, req RemoveReviewRequest) error {
	b, err := uc.books.FindByID(ctx, book.ID(req.BookID))
	if err != nil {
		return err
	}
	events, err := b.RemoveReview(book.ReviewID(req.ReviewID))
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.books, uc.publisher, b, events)
}
