package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// ChangeAuthorNameUseCase 修改作者姓名
type ChangeAuthorNameUseCase struct {
	authors   author.Repository
	service   author.Service
	publisher event.Publisher
}

func NewChangeAuthorNameUseCase(authors author.Repository, service author.Service, publisher event.Publisher) *ChangeAuthorNameUseCase {
	return &ChangeAuthorNameUseCase{authors: authors, service: service, publisher: publisher}
}

type ChangeAuthorNameRequest struct {
	AuthorID  string
	FirstName string
	LastName  string
}

func (uc *ChangeAuthorNameUseCase) Execute(ctx context.Context, req ChangeAuthorNameRequest) error {
	a, err := uc.authors.FindByID(ctx, author.ID(req.AuthorID))
	if err != nil {
		return err
	}
	name, err := author.NewName(req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	if err := uc.service.VerifyNameUniqueness(ctx, name, a.ID()); err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.authors, uc.publisher, a, a.ChangeName(name))
}

// ChangeAuthorBiographyUseCase 修改作者简介
type ChangeAuthorBiographyUseCase struct {
	authors   author.Repository
	publisher event.Publisher
}

func NewChangeAuthorBiographyUseCase(authors author.Repository, publisher event.Publisher) *ChangeAuthorBiographyUseCase {
	return &ChangeAuthorBiographyUseCase{authors: authors, publisher: publisher}
}

type ChangeAuthorBiographyRequest struct {
	AuthorID  string
	Biography string
}

func (uc *ChangeAuthorBiographyUseCase) Execute(ctx context.Context, req ChangeAuthorBiographyRequest) error {
	a, err := uc.authors.FindByID(ctx, author.ID(req.AuthorID))
	if err != nil {
		return err
	}
	bio, err := author.NewBiography(req.Biography)
	if err != nil {
		return err
	}
	return saveAndPublish(ctx, uc.authors, uc.publisher, a, a.ChangeBiography(bio))
}

func saveAndPublish(ctx context.Context, authors author.Repository, publisher event.Publisher, a *author.Author, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := authors.Save(ctx, a); err != nil {
		return err
	}
	publisher.Publish(ctx, events)
	return nil
}
