package author

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 作者领域错误码
const (
	CodeEmptyName        = "EMPTY_AUTHOR_NAME"
	CodeNameTooLong      = "AUTHOR_NAME_TOO_LONG"
	CodeEmptyBiography   = "EMPTY_AUTHOR_BIOGRAPHY"
	CodeBiographyTooLong = "AUTHOR_BIOGRAPHY_TOO_LONG"
	CodeDuplicateName    = "DUPLICATE_AUTHOR_NAME"
	CodeAuthorHasBooks   = "AUTHOR_HAS_BOOKS"
	CodeAuthorNotFound   = "AUTHOR_NOT_FOUND"
)

var (
	// ErrEmptyName 名或姓为空
	ErrEmptyName = apperrors.New(apperrors.KindValidation, CodeEmptyName, "Author first and last name must not be empty")

	// ErrNameTooLong 名或姓超长
	ErrNameTooLong = apperrors.Newf(apperrors.KindValidation, CodeNameTooLong, "Author name parts must not exceed %d characters", MaxNamePartLength)

	ErrEmptyBiography   = apperrors.New(apperrors.KindValidation, CodeEmptyBiography, "Author biography must not be empty")
	ErrBiographyTooLong = apperrors.Newf(apperrors.KindValidation, CodeBiographyTooLong, "Author biography must not exceed %d characters", MaxBiographyLength)

	// ErrDuplicateName 同名作者已存在
	ErrDuplicateName = apperrors.New(apperrors.KindInvalidOperation, CodeDuplicateName, "Author with this name already exists")

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.KindNotFound, CodeAuthorNotFound, "Author not found")
)

// DuplicateName 带作者全名的重复错误
func DuplicateName(fullName string) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeDuplicateName, "Author '%s' already exists", fullName)
}

// HasBooks 作者仍有图书,不能删除
func HasBooks(id ID) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeAuthorHasBooks, "Author %s still has books and cannot be deleted", id)
}

// NotFound 带ID的不存在错误
func NotFound(id ID) error {
	return apperrors.Newf(apperrors.KindNotFound, CodeAuthorNotFound, "Author %s not found", id)
}
