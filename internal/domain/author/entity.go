package author

import (
	"github.com/xiebiao/bookshelf/internal/domain/event"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Author 作者聚合根
// 姓名全局唯一由领域服务和仓储共同保证,聚合本身只负责自身状态
type Author struct {
	id        ID
	name      Name
	biography Biography
}

// New 创建作者并产生AuthorCreated事件
// ID由调用方(领域服务)分配
func New(id ID, name Name, biography Biography) (*Author, []event.Event, error) {
	if id == "" {
		return nil, nil, apperrors.RequiredField("Author", "author_id")
	}
	a := &Author{id: id, name: name, biography: biography}
	return a, []event.Event{newAuthorCreated(id, name)}, nil
}

// Reconstitute 从存储重建聚合,不产生事件
func Reconstitute(id ID, name Name, biography Biography) *Author {
	return &Author{id: id, name: name, biography: biography}
}

func (a *Author) ID() ID               { return a.id }
func (a *Author) Name() Name           { return a.name }
func (a *Author) Biography() Biography { return a.biography }

// ChangeName 修改姓名,相同则不产生事件
// 唯一性由调用方先行校验
func (a *Author) ChangeName(name Name) []event.Event {
	if a.name.Equals(name) {
		return nil
	}
	a.name = name
	return []event.Event{&AuthorNameChanged{
		Base:         event.NewBase("AuthorNameChanged", a.id.String()),
		AuthorID:     a.id.String(),
		NewFirstName: name.FirstName(),
		NewLastName:  name.LastName(),
	}}
}

// ChangeBiography 修改简介,相同则不产生事件
func (a *Author) ChangeBiography(biography Biography) []event.Event {
	if a.biography.Equals(biography) {
		return nil
	}
	a.biography = biography
	return []event.Event{&AuthorBiographyChanged{
		Base:         event.NewBase("AuthorBiographyChanged", a.id.String()),
		AuthorID:     a.id.String(),
		NewBiography: biography.String(),
	}}
}

// Clone 复制聚合(值对象不可变,浅拷贝即可)
func (a *Author) Clone() *Author {
	c := *a
	return &c
}
