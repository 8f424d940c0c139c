package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// AuthorRepository 作者仓储MySQL实现
// 姓名唯一由uk_author_name索引保证
type AuthorRepository struct {
	db *gorm.DB
	tx *TxManager
}

func NewAuthorRepository(db *gorm.DB, tx *TxManager) *AuthorRepository {
	return &AuthorRepository{db: db, tx: tx}
}

var _ author.Repository = (*AuthorRepository)(nil)

func (r *AuthorRepository) Save(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := getDB(ctx, r.db)

		var count int64
		if err := db.Model(&AuthorModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return db.Create(&model).Error
		}
		return db.Model(&AuthorModel{ID: model.ID}).
			Select("first_name", "last_name", "biography", "updated_at").
			Updates(&model).Error
	})

	if err != nil {
		if isDuplicateError(err) {
			return author.DuplicateName(a.Name().FullName())
		}
		return apperrors.Wrap(err, "保存作者失败")
	}
	return nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id author.ID) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model)
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, 0, len(models))
	for i := range models {
		a, err := toAuthorEntity(&models[i])
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id author.ID) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, "id = ?", string(id))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.NotFound(id)
	}
	return nil
}

func (r *AuthorRepository) NameExists(ctx context.Context, name author.Name, exclude author.ID) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("first_name = ? AND last_name = ? AND id <> ?", name.FirstName(), name.LastName(), string(exclude)).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询作者姓名失败")
	}
	return count > 0, nil
}

func toAuthorModel(a *author.Author) AuthorModel {
	return AuthorModel{
		ID:        a.ID().String(),
		FirstName: a.Name().FirstName(),
		LastName:  a.Name().LastName(),
		Biography: a.Biography().String(),
	}
}

func toAuthorEntity(m *AuthorModel) (*author.Author, error) {
	name, err := author.NewName(m.FirstName, m.LastName)
	if err != nil {
		return nil, apperrors.Wrapf(err, "作者%s数据损坏", m.ID)
	}
	bio, err := author.NewBiography(m.Biography)
	if err != nil {
		return nil, apperrors.Wrapf(err, "作者%s数据损坏", m.ID)
	}
	return author.Reconstitute(author.ID(m.ID), name, bio), nil
}
