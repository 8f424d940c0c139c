package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// BookRepository 图书仓储MySQL实现
// 1. 聚合整体保存:books行 + 先删后插的分类、书评子表,在同一事务中完成
// 2. ISBN唯一由isbn_digits唯一索引保证,冲突转换为DUPLICATE_ISBN
type BookRepository struct {
	db *gorm.DB
	tx *TxManager
}

func NewBookRepository(db *gorm.DB, tx *TxManager) *BookRepository {
	return &BookRepository{db: db, tx: tx}
}

var _ book.Repository = (*BookRepository)(nil)
var _ author.BookChecker = (*BookRepository)(nil)

func (r *BookRepository) Save(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := getDB(ctx, r.db)

		var count int64
		if err := db.Model(&BookModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Omit(clause.Associations).Create(&model).Error; err != nil {
				return err
			}
		} else {
			err := db.Model(&BookModel{ID: model.ID}).
				Select("author_id", "title", "isbn", "isbn_digits", "summary", "published_year", "page_count", "updated_at").
				Updates(&model).Error
			if err != nil {
				return err
			}
		}

		if err := db.Where("book_id = ?", model.ID).Delete(&GenreModel{}).Error; err != nil {
			return err
		}
		if err := db.Where("book_id = ?", model.ID).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}
		if len(model.Genres) > 0 {
			if err := db.Create(&model.Genres).Error; err != nil {
				return err
			}
		}
		if len(model.Reviews) > 0 {
			if err := db.Create(&model.Reviews).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if isDuplicateError(err) {
			return book.DuplicateISBN(b.ISBN())
		}
		return apperrors.Wrap(err, "保存图书失败")
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id book.ID) (*book.Book, error) {
	var model BookModel
	err := r.withChildren(getDB(ctx, r.db)).First(&model, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model)
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.withChildren(getDB(ctx, r.db)).Order("created_at, id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models)
}

func (r *BookRepository) FindByAuthor(ctx context.Context, authorID author.ID) ([]*book.Book, error) {
	var models []BookModel
	err := r.withChildren(getDB(ctx, r.db)).
		Where("author_id = ?", string(authorID)).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}
	return toBookEntities(models)
}

func (r *BookRepository) Delete(ctx context.Context, id book.ID) error {
	var affected int64
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := getDB(ctx, r.db)
		if err := db.Where("book_id = ?", string(id)).Delete(&GenreModel{}).Error; err != nil {
			return err
		}
		if err := db.Where("book_id = ?", string(id)).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}
		result := db.Delete(&BookModel{}, "id = ?", string(id))
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return apperrors.Wrap(err, "删除图书失败")
	}
	if affected == 0 {
		return book.NotFound(id)
	}
	return nil
}

func (r *BookRepository) ISBNExists(ctx context.Context, isbn book.ISBN, exclude book.ID) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("isbn_digits = ? AND id <> ?", isbn.Digits(), string(exclude)).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询ISBN失败")
	}
	return count > 0, nil
}

func (r *BookRepository) HasBooksByAuthor(ctx context.Context, authorID author.ID) (bool, error) {
	var ids []string
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("author_id = ?", string(authorID)).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询作者图书失败")
	}
	return len(ids) > 0, nil
}

func (r *BookRepository) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// =========================================
// 模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) BookModel {
	id := b.ID().String()
	model := BookModel{
		ID:            id,
		AuthorID:      b.AuthorID().String(),
		Title:         b.Title().String(),
		ISBN:          b.ISBN().String(),
		ISBNDigits:    b.ISBN().Digits(),
		Summary:       b.Summary().String(),
		PublishedYear: b.PublishedYear().Int(),
		PageCount:     b.PageCount().Int(),
	}
	for i, g := range b.Genres() {
		model.Genres = append(model.Genres, GenreModel{BookID: id, Name: g.String(), Position: i})
	}
	for i, rv := range b.Reviews() {
		model.Reviews = append(model.Reviews, ReviewModel{
			ID:        rv.ID().String(),
			BookID:    id,
			Rating:    rv.Rating().Int(),
			Comment:   rv.Comment().String(),
			Position:  i,
			CreatedAt: rv.CreatedAt(),
		})
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
// 存储中的数据违反值对象约束时视为内部错误
func toBookEntity(m *BookModel) (*book.Book, error) {
	b, err := rebuildBook(m)
	if err != nil {
		return nil, apperrors.Wrapf(err, "图书%s数据损坏", m.ID)
	}
	return b, nil
}

func rebuildBook(m *BookModel) (*book.Book, error) {
	title, err := book.NewTitle(m.Title)
	if err != nil {
		return nil, err
	}
	isbn, err := book.NewISBN(m.ISBN)
	if err != nil {
		return nil, err
	}
	summary, err := book.NewSummary(m.Summary)
	if err != nil {
		return nil, err
	}
	year, err := book.NewPublishedYear(m.PublishedYear)
	if err != nil {
		return nil, err
	}
	pages, err := book.NewPageCount(m.PageCount)
	if err != nil {
		return nil, err
	}

	genres := make([]book.Genre, 0, len(m.Genres))
	for _, gm := range m.Genres {
		g, err := book.NewGenre(gm.Name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}

	reviews := make([]book.Review, 0, len(m.Reviews))
	for _, rm := range m.Reviews {
		rating, err := book.NewRating(rm.Rating)
		if err != nil {
			return nil, err
		}
		comment, err := book.NewReviewComment(rm.Comment)
		if err != nil {
			return nil, err
		}
		rv, err := book.NewReview(book.ReviewID(rm.ID), rating, comment, rm.CreatedAt.UTC())
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return book.Reconstitute(book.Params{
		ID:            book.ID(m.ID),
		AuthorID:      author.ID(m.AuthorID),
		Title:         title,
		ISBN:          isbn,
		Summary:       summary,
		PublishedYear: year,
		PageCount:     pages,
		Genres:        genres,
	}, reviews)
}

func toBookEntities(models []BookModel) ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(models))
	for i := range models {
		b, err := toBookEntity(&models[i])
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}
