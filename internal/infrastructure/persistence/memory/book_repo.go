package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookRepository 图书仓储内存实现
// 1. map存储聚合副本,读写都拷贝,调用方修改不会影响存储
// 2. isbnIndex按13位数字索引,Save时在同一把锁内检查并写入
// 3. order记录插入顺序,FindAll按创建顺序返回
type BookRepository struct {
	mu        sync.RWMutex
	books     map[book.ID]*book.Book
	isbnIndex map[string]book.ID
	order     []book.ID
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() *BookRepository {
	return &BookRepository{
		books:     make(map[book.ID]*book.Book),
		isbnIndex: make(map[string]book.ID),
	}
}

var _ book.Repository = (*BookRepository)(nil)
var _ author.BookChecker = (*BookRepository)(nil)

func (r *BookRepository) Save(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := b.ISBN().Digits()
	if owner, ok := r.isbnIndex[key]; ok && owner != b.ID() {
		return book.DuplicateISBN(b.ISBN())
	}

	if prev, ok := r.books[b.ID()]; ok {
		delete(r.isbnIndex, prev.ISBN().Digits())
	} else {
		r.order = append(r.order, b.ID())
	}
	r.books[b.ID()] = b.Clone()
	r.isbnIndex[key] = b.ID()
	return nil
}

func (r *BookRepository) FindByID(_ context.Context, id book.ID) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.NotFound(id)
	}
	return b.Clone(), nil
}

func (r *BookRepository) FindAll(_ context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*book.Book, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.books[id].Clone())
	}
	return out, nil
}

func (r *BookRepository) FindByAuthor(_ context.Context, authorID author.ID) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*book.Book, 0)
	for _, id := range r.order {
		if b := r.books[id]; b.AuthorID() == authorID {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

func (r *BookRepository) Delete(_ context.Context, id book.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return book.NotFound(id)
	}
	delete(r.books, id)
	delete(r.isbnIndex, b.ISBN().Digits())
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *BookRepository) ISBNExists(_ context.Context, isbn book.ISBN, exclude book.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.isbnIndex[isbn.Digits()]
	return ok && owner != exclude, nil
}

func (r *BookRepository) HasBooksByAuthor(_ context.Context, authorID author.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.AuthorID() == authorID {
			return true, nil
		}
	}
	return false, nil
}
