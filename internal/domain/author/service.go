package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/domain/shared"
)

// Service 作者领域服务
// 封装跨聚合的规则:姓名唯一、删除前检查图书引用
type Service interface {
	// CreateAuthor 校验姓名唯一后分配ID创建作者
	CreateAuthor(ctx context.Context, name Name, biography Biography) (*Author, []event.Event, error)

	// VerifyNameUniqueness exclude为空时检查全部作者
	VerifyNameUniqueness(ctx context.Context, name Name, exclude ID) error

	// VerifyDeletable 作者名下有图书时返回AUTHOR_HAS_BOOKS
	VerifyDeletable(ctx context.Context, id ID) error
}

type service struct {
	repo  Repository
	books BookChecker
	ids   shared.IDGenerator
}

// NewService 创建作者领域服务
func NewService(repo Repository, books BookChecker, ids shared.IDGenerator) Service {
	return &service{repo: repo, books: books, ids: ids}
}

func (s *service) CreateAuthor(ctx context.Context, name Name, biography Biography) (*Author, []event.Event, error) {
	if err := s.VerifyNameUniqueness(ctx, name, ""); err != nil {
		return nil, nil, err
	}
	return New(ID(s.ids.Generate()), name, biography)
}

func (s *service) VerifyNameUniqueness(ctx context.Context, name Name, exclude ID) error {
	exists, err := s.repo.NameExists(ctx, name, exclude)
	if err != nil {
		return err
	}
	if exists {
		return DuplicateName(name.FullName())
	}
	return nil
}

func (s *service) VerifyDeletable(ctx context.Context, id ID) error {
	has, err := s.books.HasBooksByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return HasBooks(id)
	}
	return nil
}
