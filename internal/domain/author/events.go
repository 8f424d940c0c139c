package author

import "github.com/xiebiao/bookshelf/internal/domain/event"

// 作者领域事件
// 事件名与类型名一致,序列化后由事件发布器投递

type AuthorCreated struct {
	event.Base
	AuthorID  string `json:"author_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func newAuthorCreated(id ID, name Name) *AuthorCreated {
	return &AuthorCreated{
		Base:      event.NewBase("AuthorCreated", id.String()),
		AuthorID:  id.String(),
		FirstName: name.FirstName(),
		LastName:  name.LastName(),
	}
}

type AuthorNameChanged struct {
	event.Base
	AuthorID     string `json:"author_id"`
	NewFirstName string `json:"new_first_name"`
	NewLastName  string `json:"new_last_name"`
}

type AuthorBiographyChanged struct {
	event.Base
	AuthorID     string `json:"author_id"`
	NewBiography string `json:"new_biography"`
}

type AuthorDeleted struct {
	event.Base
	AuthorID string `json:"author_id"`
}

// NewAuthorDeleted 删除事件由应用层在删除成功后产生
func NewAuthorDeleted(id ID) *AuthorDeleted {
	return &AuthorDeleted{
		Base:     event.NewBase("AuthorDeleted", id.String()),
		AuthorID: id.String(),
	}
}
