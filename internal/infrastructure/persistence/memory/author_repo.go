package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// AuthorRepository 作者仓储内存实现
// nameIndex以"名\x00姓"为键,保证姓名唯一
type AuthorRepository struct {
	mu        sync.RWMutex
	authors   map[author.ID]*author.Author
	nameIndex map[string]author.ID
	order     []author.ID
}

// NewAuthorRepository 创建内存作者仓储
func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors:   make(map[author.ID]*author.Author),
		nameIndex: make(map[string]author.ID),
	}
}

var _ author.Repository = (*AuthorRepository)(nil)

func nameKey(n author.Name) string {
	return n.FirstName() + "\x00" + n.LastName()
}

func (r *AuthorRepository) Save(_ context.Context, a *author.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nameKey(a.Name())
	if owner, ok := r.nameIndex[key]; ok && owner != a.ID() {
		return author.DuplicateName(a.Name().FullName())
	}

	if prev, ok := r.authors[a.ID()]; ok {
		delete(r.nameIndex, nameKey(prev.Name()))
	} else {
		r.order = append(r.order, a.ID())
	}
	r.authors[a.ID()] = a.Clone()
	r.nameIndex[key] = a.ID()
	return nil
}

func (r *AuthorRepository) FindByID(_ context.Context, id author.ID) (*author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.NotFound(id)
	}
	return a.Clone(), nil
}

func (r *AuthorRepository) FindAll(_ context.Context) ([]*author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*author.Author, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.authors[id].Clone())
	}
	return out, nil
}

func (r *AuthorRepository) Delete(_ context.Context, id author.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[id]
	if !ok {
		return author.NotFound(id)
	}
	delete(r.authors, id)
	delete(r.nameIndex, nameKey(a.Name()))
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *AuthorRepository) NameExists(_ context.Context, name author.Name, exclude author.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.nameIndex[nameKey(name)]
	return ok && owner != exclude, nil
}
