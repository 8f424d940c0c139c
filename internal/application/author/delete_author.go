package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// DeleteAuthorUseCase 删除作者
// 名下还有图书时返回AUTHOR_HAS_BOOKS
type DeleteAuthorUseCase struct {
	authors   author.Repository
	service   author.Service
	publisher event.Publisher
}

func NewDeleteAuthorUseCase(authors author.Repository, service author.Service, publisher event.Publisher) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authors: authors, service: service, publisher: publisher}
}

func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, authorID string) error {
	a, err := uc.authors.FindByID(ctx, author.ID(authorID))
	if err != nil {
		return err
	}
	if err := uc.service.VerifyDeletable(ctx, a.ID()); err != nil {
		return err
	}
	if err := uc.authors.Delete(ctx, a.ID()); err != nil {
		return err
	}
	uc.publisher.Publish(ctx, []event.Event{author.NewAuthorDeleted(a.ID())})
	return nil
}
