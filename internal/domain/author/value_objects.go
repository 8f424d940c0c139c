package author

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNamePartLength  = 100
	MaxBiographyLength = 5000
)

// ID 作者标识
type ID string

func (id ID) String() string { return string(id) }

// Name 作者姓名(值对象)
// 名和姓分别校验,全名为"名 姓"
type Name struct {
	first string
	last  string
}

// NewName 创建作者姓名
func NewName(first, last string) (Name, error) {
	if isBlank(first) || isBlank(last) {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(first) > MaxNamePartLength || utf8.RuneCountInString(last) > MaxNamePartLength {
		return Name{}, ErrNameTooLong
	}
	return Name{first: first, last: last}, nil
}

func (n Name) FirstName() string { return n.first }
func (n Name) LastName() string  { return n.last }

// FullName 返回"名 姓"
func (n Name) FullName() string {
	return n.first + " " + n.last
}

func (n Name) Equals(other Name) bool {
	return n.first == other.first && n.last == other.last
}

func (n Name) String() string { return n.FullName() }

// Biography 作者简介
type Biography struct {
	value string
}

// NewBiography 创建作者简介
func NewBiography(v string) (Biography, error) {
	if isBlank(v) {
		return Biography{}, ErrEmptyBiography
	}
	if utf8.RuneCountInString(v) > MaxBiographyLength {
		return Biography{}, ErrBiographyTooLong
	}
	return Biography{value: v}, nil
}

func (b Biography) String() string { return b.value }

func (b Biography) Equals(other Biography) bool {
	return b.value == other.value
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
