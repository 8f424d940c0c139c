package book

import "github.com/xiebiao/bookshelf/internal/domain/event"

// 图书领域事件
// 每次状态变化产生且仅产生一个事件,无变化时不产生

type BookCreated struct {
	event.Base
	BookID   string `json:"book_id"`
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	ISBN     string `json:"isbn"`
}

type BookTitleChanged struct {
	event.Base
	BookID   string `json:"book_id"`
	NewTitle string `json:"new_title"`
}

// BookISBNChanged 事件名沿用BookIsbnChanged
type BookISBNChanged struct {
	event.Base
	BookID  string `json:"book_id"`
	NewISBN string `json:"new_isbn"`
}

type BookSummaryChanged struct {
	event.Base
	BookID     string `json:"book_id"`
	NewSummary string `json:"new_summary"`
}

type GenreAdded struct {
	event.Base
	BookID string `json:"book_id"`
	Genre  string `json:"genre"`
}

type GenreRemoved struct {
	event.Base
	BookID string `json:"book_id"`
	Genre  string `json:"genre"`
}

type ReviewAdded struct {
	event.Base
	BookID   string `json:"book_id"`
	ReviewID string `json:"review_id"`
}

type ReviewRemoved struct {
	event.Base
	BookID   string `json:"book_id"`
	ReviewID string `json:"review_id"`
}

type BookDeleted struct {
	event.Base
	BookID   string `json:"book_id"`
	AuthorID string `json:"author_id"`
}

// NewBookDeleted 删除成功后由应用层产生
func NewBookDeleted(b *Book) *BookDeleted {
	return &BookDeleted{
		Base:     event.NewBase("BookDeleted", b.id.String()),
		BookID:   b.id.String(),
		AuthorID: b.authorID.String(),
	}
}
