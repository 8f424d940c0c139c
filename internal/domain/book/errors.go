package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误码
const (
	CodeEmptyTitle           = "EMPTY_BOOK_TITLE"
	CodeTitleTooLong         = "BOOK_TITLE_TOO_LONG"
	CodeInvalidISBN          = "INVALID_ISBN"
	CodeEmptySummary         = "EMPTY_SUMMARY"
	CodeSummaryTooLong       = "SUMMARY_TOO_LONG"
	CodeInvalidPublishedYear = "INVALID_PUBLISHED_YEAR"
	CodeInvalidPageCount     = "INVALID_PAGE_COUNT"
	CodePageCountTooHigh     = "PAGE_COUNT_TOO_HIGH"
	CodeEmptyGenreName       = "EMPTY_GENRE_NAME"
	CodeGenreNameTooLong     = "GENRE_NAME_TOO_LONG"
	CodeInvalidRating        = "INVALID_RATING"
	CodeEmptyReviewComment   = "EMPTY_REVIEW_COMMENT"
	CodeReviewCommentTooLong = "REVIEW_COMMENT_TOO_LONG"

	CodeDuplicateGenre   = "DUPLICATE_GENRE"
	CodeGenreNotFound    = "GENRE_NOT_FOUND"
	CodeLastGenreRemoval = "LAST_GENRE_REMOVAL"
	CodeReviewNotFound   = "REVIEW_NOT_FOUND"
	CodeDuplicateReview  = "DUPLICATE_REVIEW"
	CodeDuplicateISBN    = "DUPLICATE_ISBN"
	CodeBookNotFound     = "BOOK_NOT_FOUND"
)

// 值对象校验错误
var (
	ErrEmptyTitle           = apperrors.New(apperrors.KindValidation, CodeEmptyTitle, "Book title must not be empty")
	ErrTitleTooLong         = apperrors.Newf(apperrors.KindValidation, CodeTitleTooLong, "Book title must not exceed %d characters", MaxTitleLength)
	ErrInvalidISBN          = apperrors.New(apperrors.KindValidation, CodeInvalidISBN, "ISBN format is invalid")
	ErrEmptySummary         = apperrors.New(apperrors.KindValidation, CodeEmptySummary, "Summary must not be empty")
	ErrSummaryTooLong       = apperrors.Newf(apperrors.KindValidation, CodeSummaryTooLong, "Summary must not exceed %d characters", MaxSummaryLength)
	ErrInvalidPublishedYear = apperrors.New(apperrors.KindValidation, CodeInvalidPublishedYear, "Published year is out of range")
	ErrInvalidPageCount     = apperrors.New(apperrors.KindValidation, CodeInvalidPageCount, "Page count must be positive")
	ErrPageCountTooHigh     = apperrors.Newf(apperrors.KindValidation, CodePageCountTooHigh, "Page count must not exceed %d", MaxPageCount)
	ErrEmptyGenreName       = apperrors.New(apperrors.KindValidation, CodeEmptyGenreName, "Genre name must not be empty")
	ErrGenreNameTooLong     = apperrors.Newf(apperrors.KindValidation, CodeGenreNameTooLong, "Genre name must not exceed %d characters", MaxGenreLength)
	ErrInvalidRating        = apperrors.Newf(apperrors.KindValidation, CodeInvalidRating, "Rating must be between %d and %d", MinRating, MaxRating)
	ErrEmptyReviewComment   = apperrors.New(apperrors.KindValidation, CodeEmptyReviewComment, "Review comment must not be empty")
	ErrReviewCommentTooLong = apperrors.Newf(apperrors.KindValidation, CodeReviewCommentTooLong, "Review comment must not exceed %d characters", MaxCommentLength)
)

// 聚合操作错误
var (
	// ErrLastGenreRemoval 图书至少保留一个分类
	ErrLastGenreRemoval = apperrors.New(apperrors.KindInvalidOperation, CodeLastGenreRemoval, "Cannot remove the last genre from a book")

	// ErrDuplicateISBN ISBN已被其他图书使用
	ErrDuplicateISBN = apperrors.New(apperrors.KindInvalidOperation, CodeDuplicateISBN, "A book with this ISBN already exists")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.KindNotFound, CodeBookNotFound, "Book not found")
)

// DuplicateGenre 分类重复(大小写不敏感)
func DuplicateGenre(name string) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeDuplicateGenre, "Genre '%s' already exists on this book", name)
}

// GenreNotFound 图书上不存在该分类
func GenreNotFound(name string) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeGenreNotFound, "Genre '%s' not found on this book", name)
}

func ReviewNotFound(id ReviewID) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeReviewNotFound, "Review %s not found", id)
}

func DuplicateReview(id ReviewID) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeDuplicateReview, "Review %s already exists", id)
}

// DuplicateISBN 带ISBN值的重复错误
func DuplicateISBN(isbn ISBN) error {
	return apperrors.Newf(apperrors.KindInvalidOperation, CodeDuplicateISBN, "A book with ISBN %s already exists", isbn)
}

// NotFound 带ID的不存在错误
func NotFound(id ID) error {
	return apperrors.Newf(apperrors.KindNotFound, CodeBookNotFound, "Book %s not found", id)
}
