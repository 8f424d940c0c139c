package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// CreateBookUseCase 新建图书用例
// 流程:查作者 → 构造值对象 → 领域服务校验ISBN并创建 → 保存 → 发布事件
type CreateBookUseCase struct {
	books     book.Repository
	authors   author.Repository
	service   book.Service
	publisher event.Publisher
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(books book.Repository, authors author.Repository, service book.Service, publisher event.Publisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		books:     books,
		authors:   authors,
		service:   service,
		publisher: publisher,
	}
}

// CreateBookRequest 新建图书请求
type CreateBookRequest struct {
	AuthorID      string
	Title         string
	ISBN          string
	Summary       string
	PublishedYear int
	PageCount     int
	Genres        []string
}

// CreateBookResponse 新建图书响应
type CreateBookResponse struct {
	ID string `json:"id"`
}

// Execute 执行用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*CreateBookResponse, error) {
	// 1. 作者必须存在
	a, err := uc.authors.FindByID(ctx, author.ID(req.AuthorID))
	if err != nil {
		return nil, err
	}

	// 2. 构造值对象
	draft, err := buildDraft(a.ID(), req)
	if err != nil {
		return nil, err
	}

	// 3. 领域服务:ISBN唯一性 + 分配ID
	b, events, err := uc.service.CreateBook(ctx, draft)
	if err != nil {
		return nil, err
	}

	// 4. 持久化(仓储层再次保证ISBN唯一)
	if err := uc.books.Save(ctx, b); err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events)
	return &CreateBookResponse{ID: b.ID().String()}, nil
}

func buildDraft(authorID author.ID, req CreateBookRequest) (book.Draft, error) {
	var (
		d   = book.Draft{AuthorID: authorID}
		err error
	)
	if d.ISBN, err = book.NewISBN(req.ISBN); err != nil {
		return d, err
	}
	if d.Genres, err = parseGenres(req.Genres); err != nil {
		return d, err
	}
	if d.Title, err = book.NewTitle(req.Title); err != nil {
		return d, err
	}
	if d.Summary, err = book.NewSummary(req.Summary); err != nil {
		return d, err
	}
	if d.PublishedYear, err = book.NewPublishedYear(req.PublishedYear); err != nil {
		return d, err
	}
	if d.PageCount, err = book.NewPageCount(req.PageCount); err != nil {
		return d, err
	}
	return d, nil
}

func parseGenres(names []string) ([]book.Genre, error) {
	genres := make([]book.Genre, 0, len(names))
	for _, n := range names {
		g, err := book.NewGenre(n)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, nil
}
