package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// GetAuthorByIDUseCase 按ID查询作者
type GetAuthorByIDUseCase struct {
	authors author.Repository
}

func NewGetAuthorByIDUseCase(authors author.Repository) *GetAuthorByIDUseCase {
	return &GetAuthorByIDUseCase{authors: authors}
}

func (uc *GetAuthorByIDUseCase) Execute(ctx context.Context, authorID string) (*AuthorReadModel, error) {
	a, err := uc.authors.FindByID(ctx, author.ID(authorID))
	if err != nil {
		return nil, err
	}
	rm := ToReadModel(a)
	return &rm, nil
}

// ListAuthorsUseCase 查询全部作者
type ListAuthorsUseCase struct {
	authors author.Repository
}

func NewListAuthorsUseCase(authors author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authors: authors}
}

func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]AuthorReadModel, error) {
	authors, err := uc.authors.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AuthorReadModel, len(authors))
	for i, a := range authors {
		out[i] = ToReadModel(a)
	}
	return out, nil
}
