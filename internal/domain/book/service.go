package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/domain/shared"
)

// Service 图书领域服务接口
// 封装跨聚合规则(ISBN唯一)和需要外部端口(ID生成、时钟)的行为
type Service interface {
	// VerifyISBNUniqueness exclude为空时检查全部图书
	VerifyISBNUniqueness(ctx context.Context, isbn ISBN, exclude ID) error

	// CreateBook 校验ISBN唯一后分配ID创建图书
	CreateBook(ctx context.Context, draft Draft) (*Book, []event.Event, error)

	// AddReview 生成书评ID和时间并添加到图书
	AddReview(b *Book, rating Rating, comment ReviewComment) (ReviewID, []event.Event, error)
}

// Draft 新建图书的输入,ID由服务分配
type Draft struct {
	AuthorID      author.ID
	Title         Title
	ISBN          ISBN
	Summary       Summary
	PublishedYear PublishedYear
	PageCount     PageCount
	Genres        []Genre
}

type service struct {
	repo  Repository
	ids   shared.IDGenerator
	clock shared.Clock
}

// NewService 创建图书领域服务
func NewService(repo Repository, ids shared.IDGenerator, clock shared.Clock) Service {
	return &service{repo: repo, ids: ids, clock: clock}
}

func (s *service) VerifyISBNUniqueness(ctx context.Context, isbn ISBN, exclude ID) error {
	exists, err := s.repo.ISBNExists(ctx, isbn, exclude)
	if err != nil {
		return err
	}
	if exists {
		return DuplicateISBN(isbn)
	}
	return nil
}

func (s *service) CreateBook(ctx context.Context, draft Draft) (*Book, []event.Event, error) {
	if err := s.VerifyISBNUniqueness(ctx, draft.ISBN, ""); err != nil {
		return nil, nil, err
	}
	return New(Params{
		ID:            ID(s.ids.Generate()),
		AuthorID:      draft.AuthorID,
		Title:         draft.Title,
		ISBN:          draft.ISBN,
		Summary:       draft.Summary,
		PublishedYear: draft.PublishedYear,
		PageCount:     draft.PageCount,
		Genres:        draft.Genres,
	})
}

func (s *service) AddReview(b *Book, rating Rating, comment ReviewComment) (ReviewID, []event.Event, error) {
	review, err := NewReview(ReviewID(s.ids.Generate()), rating, comment, s.clock.Now())
	if err != nil {
		return "", nil, err
	}
	events, err := b.AddReview(review)
	if err != nil {
		return "", nil, err
	}
	return review.ID(), events, nil
}
