package book

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Review 书评实体,只能通过Book修改
type Review struct {
	id        ReviewID
	rating    Rating
	comment   ReviewComment
	createdAt time.Time
}

// NewReview 创建书评(也用于从存储重建)
func NewReview(id ReviewID, rating Rating, comment ReviewComment, createdAt time.Time) (Review, error) {
	if id == "" {
		return Review{}, apperrors.RequiredField("Review", "review_id")
	}
	if createdAt.IsZero() {
		return Review{}, apperrors.RequiredField("Review", "created_at")
	}
	return Review{id: id, rating: rating, comment: comment, createdAt: createdAt}, nil
}

func (r Review) ID() ReviewID           { return r.id }
func (r Review) Rating() Rating         { return r.rating }
func (r Review) Comment() ReviewComment { return r.comment }
func (r Review) CreatedAt() time.Time   { return r.createdAt }

// Book 图书聚合根
// 不变量:
// 1. 至少一个分类,分类忽略大小写不重复
// 2. 书评由聚合持有,按添加顺序排列
// 3. 作者只保存引用(AuthorID),不持有作者聚合
// ISBN全局唯一由领域服务和仓储保证
type Book struct {
	id            ID
	authorID      author.ID
	title         Title
	isbn          ISBN
	summary       Summary
	publishedYear PublishedYear
	pageCount     PageCount
	genres        []Genre
	reviews       []Review
}

// Params 创建或重建图书的参数
type Params struct {
	ID            ID
	AuthorID      author.ID
	Title         Title
	ISBN          ISBN
	Summary       Summary
	PublishedYear PublishedYear
	PageCount     PageCount
	Genres        []Genre
}

// New 创建图书并产生BookCreated事件
func New(p Params) (*Book, []event.Event, error) {
	b, err := build(p)
	if err != nil {
		return nil, nil, err
	}
	created := &BookCreated{
		Base:     event.NewBase("BookCreated", b.id.String()),
		BookID:   b.id.String(),
		AuthorID: b.authorID.String(),
		Title:    b.title.String(),
		ISBN:     b.isbn.String(),
	}
	return b, []event.Event{created}, nil
}

// Reconstitute 从存储重建聚合,不产生事件
func Reconstitute(p Params, reviews []Review) (*Book, error) {
	b, err := build(p)
	if err != nil {
		return nil, err
	}
	b.reviews = append([]Review(nil), reviews...)
	return b, nil
}

func build(p Params) (*Book, error) {
	if p.ID == "" {
		return nil, apperrors.RequiredField("Book", "book_id")
	}
	if p.AuthorID == "" {
		return nil, apperrors.RequiredField("Book", "author_id")
	}
	if len(p.Genres) == 0 {
		return nil, apperrors.RequiredField("Book", "genres")
	}
	genres := make([]Genre, 0, len(p.Genres))
	for _, g := range p.Genres {
		if indexOfGenre(genres, g) >= 0 {
			return nil, DuplicateGenre(g.String())
		}
		genres = append(genres, g)
	}
	return &Book{
		id:            p.ID,
		authorID:      p.AuthorID,
		title:         p.Title,
		isbn:          p.ISBN,
		summary:       p.Summary,
		publishedYear: p.PublishedYear,
		pageCount:     p.PageCount,
		genres:        genres,
	}, nil
}

func (b *Book) ID() ID                       { return b.id }
func (b *Book) AuthorID() author.ID          { return b.authorID }
func (b *Book) Title() Title                 { return b.title }
func (b *Book) ISBN() ISBN                   { return b.isbn }
func (b *Book) Summary() Summary             { return b.summary }
func (b *Book) PublishedYear() PublishedYear { return b.publishedYear }
func (b *Book) PageCount() PageCount         { return b.pageCount }

// Genres 返回分类副本
func (b *Book) Genres() []Genre {
	return append([]Genre(nil), b.genres...)
}

// Reviews 返回书评副本
func (b *Book) Reviews() []Review {
	return append([]Review(nil), b.reviews...)
}

func (b *Book) ReviewCount() int {
	return len(b.reviews)
}

// AverageRating 平均评分,没有书评时返回nil
func (b *Book) AverageRating() *float64 {
	if len(b.reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range b.reviews {
		sum += r.rating.Int()
	}
	avg := float64(sum) / float64(len(b.reviews))
	return &avg
}

// ChangeTitle 修改书名,相同则不产生事件
func (b *Book) ChangeTitle(title Title) []event.Event {
	if b.title.Equals(title) {
		return nil
	}
	b.title = title
	return []event.Event{&BookTitleChanged{
		Base:     event.NewBase("BookTitleChanged", b.id.String()),
		BookID:   b.id.String(),
		NewTitle: title.String(),
	}}
}

// ChangeISBN 修改ISBN,唯一性由调用方先行校验
func (b *Book) ChangeISBN(isbn ISBN) []event.Event {
	if b.isbn.Equals(isbn) {
		return nil
	}
	b.isbn = isbn
	return []event.Event{&BookISBNChanged{
		Base:    event.NewBase("BookIsbnChanged", b.id.String()),
		BookID:  b.id.String(),
		NewISBN: isbn.String(),
	}}
}

// ChangeSummary 修改简介
func (b *Book) ChangeSummary(summary Summary) []event.Event {
	if b.summary.Equals(summary) {
		return nil
	}
	b.summary = summary
	return []event.Event{&BookSummaryChanged{
		Base:       event.NewBase("BookSummaryChanged", b.id.String()),
		BookID:     b.id.String(),
		NewSummary: summary.String(),
	}}
}

// AddGenre 添加分类,忽略大小写判重
func (b *Book) AddGenre(genre Genre) ([]event.Event, error) {
	if indexOfGenre(b.genres, genre) >= 0 {
		return nil, DuplicateGenre(genre.String())
	}
	b.genres = append(b.genres, genre)
	return []event.Event{&GenreAdded{
		Base:   event.NewBase("GenreAdded", b.id.String()),
		BookID: b.id.String(),
		Genre:  genre.String(),
	}}, nil
}

// RemoveGenre 移除分类
// 只剩一个分类时直接拒绝,不论要移除的分类是否存在
func (b *Book) RemoveGenre(genre Genre) ([]event.Event, error) {
	if len(b.genres) <= 1 {
		return nil, ErrLastGenreRemoval
	}
	i := indexOfGenre(b.genres, genre)
	if i < 0 {
		return nil, GenreNotFound(genre.String())
	}
	removed := b.genres[i]
	b.genres = append(b.genres[:i:i], b.genres[i+1:]...)
	return []event.Event{&GenreRemoved{
		Base:   event.NewBase("GenreRemoved", b.id.String()),
		BookID: b.id.String(),
		Genre:  removed.String(),
	}}, nil
}

// AddReview 添加书评,ID和时间由调用方提供
func (b *Book) AddReview(review Review) ([]event.Event, error) {
	if b.indexOfReview(review.id) >= 0 {
		return nil, DuplicateReview(review.id)
	}
	b.reviews = append(b.reviews, review)
	return []event.Event{&ReviewAdded{
		Base:     event.NewBaseAt("ReviewAdded", b.id.String(), review.createdAt),
		BookID:   b.id.String(),
		ReviewID: review.id.String(),
	}}, nil
}

// RemoveReview 删除书评
func (b *Book) RemoveReview(id ReviewID) ([]event.Event, error) {
	i := b.indexOfReview(id)
	if i < 0 {
		return nil, ReviewNotFound(id)
	}
	b.reviews = append(b.reviews[:i:i], b.reviews[i+1:]...)
	return []event.Event{&ReviewRemoved{
		Base:     event.NewBase("ReviewRemoved", b.id.String()),
		BookID:   b.id.String(),
		ReviewID: id.String(),
	}}, nil
}

// Clone 深拷贝切片字段,仓储用它隔离存储副本
func (b *Book) Clone() *Book {
	c := *b
	c.genres = append([]Genre(nil), b.genres...)
	c.reviews = append([]Review(nil), b.reviews...)
	return &c
}

func (b *Book) indexOfReview(id ReviewID) int {
	for i, r := range b.reviews {
		if r.id == id {
			return i
		}
	}
	return -1
}

func indexOfGenre(genres []Genre, g Genre) int {
	for i, existing := range genres {
		if existing.Equals(g) {
			return i
		}
	}
	return -1
}
