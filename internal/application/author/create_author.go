package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// CreateAuthorUseCase 新建作者
// 姓名唯一性先由领域服务检查,仓储Save时再原子校验一次
type CreateAuthorUseCase struct {
	authors   author.Repository
	service   author.Service
	publisher event.Publisher
}

// NewCreateAuthorUseCase 创建用例
func NewCreateAuthorUseCase(authors author.Repository, service author.Service, publisher event.Publisher) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authors: authors, service: service, publisher: publisher}
}

// CreateAuthorRequest 新建作者请求
type CreateAuthorRequest struct {
	FirstName string
	LastName  string
	Biography string
}

// CreateAuthorResponse 新建作者响应
type CreateAuthorResponse struct {
	ID string `json:"id"`
}

func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*CreateAuthorResponse, error) {
	name, err := author.NewName(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	bio, err := author.NewBiography(req.Biography)
	if err != nil {
		return nil, err
	}

	a, events, err := uc.service.CreateAuthor(ctx, name, bio)
	if err != nil {
		return nil, err
	}
	if err := uc.authors.Save(ctx, a); err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events)
	return &CreateAuthorResponse{ID: a.ID().String()}, nil
}
