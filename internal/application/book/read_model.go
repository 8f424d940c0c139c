package book

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookReadModel 图书读模型
// 查询用例和命令响应共用,与HTTP层解耦
type BookReadModel struct {
	ID            string            `json:"id"`
	AuthorID      string            `json:"author_id"`
	Title         string            `json:"title"`
	ISBN          string            `json:"isbn"`
	Summary       string            `json:"summary"`
	PublishedYear int               `json:"published_year"`
	PageCount     int               `json:"page_count"`
	Genres        []GenreReadModel  `json:"genres"`
	Reviews       []ReviewReadModel `json:"reviews"`
	ReviewCount   int               `json:"review_count"`
	AverageRating *float64          `json:"average_rating"` // 没有书评时为null
}

type GenreReadModel struct {
	Name string `json:"name"`
}

type ReviewReadModel struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ToReadModel 聚合 → 读模型
func ToReadModel(b *book.Book) BookReadModel {
	genres := b.Genres()
	reviews := b.Reviews()

	rm := BookReadModel{
		ID:            b.ID().String(),
		AuthorID:      b.AuthorID().String(),
		Title:         b.Title().String(),
		ISBN:          b.ISBN().String(),
		Summary:       b.Summary().String(),
		PublishedYear: b.PublishedYear().Int(),
		PageCount:     b.PageCount().Int(),
		Genres:        make([]GenreReadModel, len(genres)),
		Reviews:       make([]ReviewReadModel, len(reviews)),
		ReviewCount:   b.ReviewCount(),
		AverageRating: b.AverageRating(),
	}
	for i, g := range genres {
		rm.Genres[i] = GenreReadModel{Name: g.String()}
	}
	for i, r := range reviews {
		rm.Reviews[i] = ReviewReadModel{
			ID:        r.ID().String(),
			Rating:    r.Rating().Int(),
			Comment:   r.Comment().String(),
			CreatedAt: r.CreatedAt(),
		}
	}
	return rm
}

func toReadModels(books []*book.Book) []BookReadModel {
	out := make([]BookReadModel, len(books))
	for i, b := range books {
		out[i] = ToReadModel(b)
	}
	return out
}
