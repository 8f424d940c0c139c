package author

import (
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// UseCases 作者相关用例集合
type UseCases struct {
	Create          *CreateAuthorUseCase
	ChangeName      *ChangeAuthorNameUseCase
	ChangeBiography *ChangeAuthorBiographyUseCase
	Delete          *DeleteAuthorUseCase
	GetByID         *GetAuthorByIDUseCase
	List            *ListAuthorsUseCase
}

// NewUseCases 组装全部作者用例
func NewUseCases(authors author.Repository, service author.Service, publisher event.Publisher) *UseCases {
	return &UseCases{
		Create:          NewCreateAuthorUseCase(authors, service, publisher),
		ChangeName:      NewChangeAuthorNameUseCase(authors, service, publisher),
		ChangeBiography: NewChangeAuthorBiographyUseCase(authors, publisher),
		Delete:          NewDeleteAuthorUseCase(authors, service, publisher),
		GetByID:         NewGetAuthorByIDUseCase(authors),
		List:            NewListAuthorsUseCase(authors),
	}
}
