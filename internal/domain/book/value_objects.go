package book

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength   = 200
	MaxSummaryLength = 1000
	MinPublishedYear = 0
	MaxPublishedYear = 9999
	MaxPageCount     = 10000
	MaxGenreLength   = 50
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 2000
)

// ID 图书标识
type ID string

func (id ID) String() string { return string(id) }

// ReviewID 书评标识
type ReviewID string

func (id ReviewID) String() string { return string(id) }

// Title 书名
type Title struct{ value string }

func NewTitle(v string) (Title, error) {
	if isBlank(v) {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(v) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: v}, nil
}

func (t Title) String() string         { return t.value }
func (t Title) Equals(other Title) bool { return t.value == other.value }

// ISBN ISBN-13
// 保留调用方传入的原始写法(可含连字符),校验时去掉连字符
type ISBN struct {
	value  string
	digits string
}

// NewISBN 校验ISBN-13
// 规则:去掉连字符后必须是13位数字,按1、3交替加权求和后能被10整除
func NewISBN(v string) (ISBN, error) {
	if isBlank(v) {
		return ISBN{}, ErrInvalidISBN
	}
	digits := strings.ReplaceAll(v, "-", "")
	if len(digits) != 13 {
		return ISBN{}, ErrInvalidISBN
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return ISBN{}, ErrInvalidISBN
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	if sum%10 != 0 {
		return ISBN{}, ErrInvalidISBN
	}
	return ISBN{value: v, digits: digits}, nil
}

func (i ISBN) String() string { return i.value }

// Digits 去掉连字符的13位数字,用作存储唯一键
func (i ISBN) Digits() string { return i.digits }

func (i ISBN) Equals(other ISBN) bool { return i.value == other.value }

// Summary 内容简介
type Summary struct{ value string }

func NewSummary(v string) (Summary, error) {
	if isBlank(v) {
		return Summary{}, ErrEmptySummary
	}
	if utf8.RuneCountInString(v) > MaxSummaryLength {
		return Summary{}, ErrSummaryTooLong
	}
	return Summary{value: v}, nil
}

func (s Summary) String() string           { return s.value }
func (s Summary) Equals(other Summary) bool { return s.value == other.value }

// PublishedYear 出版年份
type PublishedYear struct{ value int }

func NewPublishedYear(v int) (PublishedYear, error) {
	if v < MinPublishedYear || v > MaxPublishedYear {
		return PublishedYear{}, ErrInvalidPublishedYear
	}
	return PublishedYear{value: v}, nil
}

func (y PublishedYear) Int() int { return y.value }

// PageCount 页数
type PageCount struct{ value int }

func NewPageCount(v int) (PageCount, error) {
	if v <= 0 {
		return PageCount{}, ErrInvalidPageCount
	}
	if v > MaxPageCount {
		return PageCount{}, ErrPageCountTooHigh
	}
	return PageCount{value: v}, nil
}

func (p PageCount) Int() int { return p.value }

// Genre 图书分类
// 开放集合,比较时忽略大小写,展示时保留原始写法
type Genre struct{ name string }

func NewGenre(v string) (Genre, error) {
	if isBlank(v) {
		return Genre{}, ErrEmptyGenreName
	}
	if utf8.RuneCountInString(v) > MaxGenreLength {
		return Genre{}, ErrGenreNameTooLong
	}
	return Genre{name: v}, nil
}

func (g Genre) String() string { return g.name }

func (g Genre) Equals(other Genre) bool {
	return strings.EqualFold(g.name, other.name)
}

// Rating 评分(1-5)
type Rating struct{ value int }

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Int() int       { return r.value }
func (r Rating) String() string { return strconv.Itoa(r.value) }

// ReviewComment 书评内容
type ReviewComment struct{ value string }

func NewReviewComment(v string) (ReviewComment, error) {
	if isBlank(v) {
		return ReviewComment{}, ErrEmptyReviewComment
	}
	if utf8.RuneCountInString(v) > MaxCommentLength {
		return ReviewComment{}, ErrReviewCommentTooLong
	}
	return ReviewComment{value: v}, nil
}

func (c ReviewComment) String() string { return c.value }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
