package author

import "github.com/xiebiao/bookshelf/internal/domain/author"

// AuthorReadModel 作者读模型
type AuthorReadModel struct {
	ID        string        `json:"id"`
	Name      NameReadModel `json:"name"`
	Biography string        `json:"biography"`
}

type NameReadModel struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// ToReadModel 聚合 → 读模型
func ToReadModel(a *author.Author) AuthorReadModel {
	return AuthorReadModel{
		ID: a.ID().String(),
		Name: NameReadModel{
			FirstName: a.Name().FirstName(),
			LastName:  a.Name().LastName(),
			FullName:  a.Name().FullName(),
		},
		Biography: a.Biography().String(),
	}
}
