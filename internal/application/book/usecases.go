package book

import (
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// UseCases 图书相关用例集合,供HTTP处理器和初始化数据使用
type UseCases struct {
	Create        *CreateBookUseCase
	ChangeTitle   *ChangeBookTitleUseCase
	ChangeISBN    *ChangeBookISBNUseCase
	ChangeSummary *ChangeBookSummaryUseCase
	AddGenre      *AddGenreToBookUseCase
	RemoveGenre   *RemoveGenreFromBookUseCase
	AddReview     *AddReviewToBookUseCase
	RemoveReview  *RemoveReviewFromBookUseCase
	Delete        *DeleteBookUseCase
	GetByID       *GetBookByIDUseCase
	List          *ListBooksUseCase
	ListByAuthor  *GetBooksByAuthorUseCase
}

// NewUseCases 组装全部图书用例
func NewUseCases(books book.Repository, authors author.Repository, service book.Service, publisher event.Publisher) *UseCases {
	return &UseCases{
		Create:        NewCreateBookUseCase(books, authors, service, publisher),
		ChangeTitle:   NewChangeBookTitleUseCase(books, publisher),
		ChangeISBN:    NewChangeBookISBNUseCase(books, service, publisher),
		ChangeSummary: NewChangeBookSummaryUseCase(books, publisher),
		AddGenre:      NewAddGenreToBookUseCase(books, publisher),
		RemoveGenre:   NewRemoveGenreFromBookUseCase(books, publisher),
		AddReview:     NewAddReviewToBookUseCase(books, service, publisher),
		RemoveReview:  NewRemoveReviewFromBookUseCase(books, publisher),
		Delete:        NewDeleteBookUseCase(books, publisher),
		GetByID:       NewGetBookByIDUseCase(books),
		List:          NewListBooksUseCase(books),
		ListByAuthor:  NewGetBooksByAuthorUseCase(books),
	}
}
