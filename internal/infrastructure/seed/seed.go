// Package seed 启动时写入示例目录数据
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
)

type authorSeed struct {
	firstName string
	lastName  string
	biography string
}

type reviewSeed struct {
	rating  int
	comment string
}

type bookSeed struct {
	author  string // 作者姓
	title   string
	isbn    string
	summary string
	year    int
	pages   int
	genres  []string
	reviews []reviewSeed
}

var authors = []authorSeed{
	{"George", "Orwell", "English novelist and essayist, best known for 1984 and Animal Farm."},
	{"Harper", "Lee", "American novelist widely known for To Kill a Mockingbird."},
	{"F. Scott", "Fitzgerald", "American novelist and short-story writer of the Jazz Age."},
	{"J.R.R.", "Tolkien", "English writer and philologist, author of The Lord of the Rings."},
	{"Jane", "Austen", "English novelist known for her witty social commentary and romance."},
}

var books = []bookSeed{
	{
		author:  "Orwell",
		title:   "1984",
		isbn:    "978-0-452-28423-4",
		summary: "A dystopian novel set in a totalitarian society under constant surveillance.",
		year:    1949,
		pages:   328,
		genres:  []string{"Fiction", "Sci-Fi", "Thriller"},
		reviews: []reviewSeed{
			{5, "A chilling and prophetic masterpiece."},
			{4, "Terrifying and thought-provoking."},
			{5, "Essential reading for everyone."},
		},
	},
	{
		author:  "Orwell",
		title:   "Animal Farm",
		isbn:    "978-0-451-52634-2",
		summary: "An allegorical novella about a group of farm animals who rebel against their human farmer.",
		year:    1945,
		pages:   112,
		genres:  []string{"Fiction", "Drama"},
		reviews: []reviewSeed{
			{4, "A brilliant political allegory."},
			{3, "Short but impactful."},
		},
	},
	{
		author:  "Lee",
		title:   "To Kill a Mockingbird",
		isbn:    "978-0-06-112008-4",
		summary: "A story of racial injustice in the Deep South seen through the eyes of a young girl.",
		year:    1960,
		pages:   281,
		genres:  []string{"Fiction", "Drama"},
		reviews: []reviewSeed{
			{5, "One of the greatest novels of the 20th century."},
			{5, "Beautifully written and deeply moving."},
			{4, "A powerful story about justice and compassion."},
		},
	},
	{
		author:  "Fitzgerald",
		title:   "The Great Gatsby",
		isbn:    "978-0-7432-7356-5",
		summary: "A portrait of the Jazz Age and the American Dream through the mysterious Jay Gatsby.",
		year:    1925,
		pages:   180,
		genres:  []string{"Fiction", "Drama"},
		reviews: []reviewSeed{
			{4, "A dazzling portrait of the American Dream."},
			{3, "Elegant prose but somewhat distant characters."},
		},
	},
	{
		author:  "Tolkien",
		title:   "The Hobbit",
		isbn:    "978-0-547-92822-7",
		summary: "A fantasy adventure following Bilbo Baggins on an unexpected journey.",
		year:    1937,
		pages:   310,
		genres:  []string{"Fiction", "Fantasy", "Children"},
		reviews: []reviewSeed{
			{5, "A perfect adventure for all ages."},
			{4, "Charming and wonderfully imaginative."},
		},
	},
	{
		author:  "Tolkien",
		title:   "The Lord of the Rings",
		isbn:    "978-0-618-64015-7",
		summary: "An epic high-fantasy tale of the quest to destroy the One Ring.",
		year:    1954,
		pages:   1178,
		genres:  []string{"Fiction", "Fantasy"},
		reviews: []reviewSeed{
			{5, "The greatest fantasy epic ever written."},
			{5, "Unmatched world-building and storytelling."},
			{4, "A monumental achievement in literature."},
		},
	},
	{
		author:  "Austen",
		title:   "Pride and Prejudice",
		isbn:    "978-0-14-143951-8",
		summary: "A witty romance about Elizabeth Bennet and the proud Mr. Darcy.",
		year:    1813,
		pages:   279,
		genres:  []string{"Fiction", "Romance"},
		reviews: []reviewSeed{
			{5, "Timeless wit and romance."},
			{4, "Austen at her finest."},
		},
	},
	{
		author:  "Austen",
		title:   "Sense and Sensibility",
		isbn:    "978-0-14-143966-2",
		summary: "The story of the Dashwood sisters navigating love and heartbreak.",
		year:    1811,
		pages:   226,
		genres:  []string{"Fiction", "Romance"},
		reviews: []reviewSeed{
			{4, "A lovely exploration of emotion versus reason."},
			{3, "Good, though not quite as sharp as Pride and Prejudice."},
		},
	},
}

// Seeder 通过应用层用例写入数据,事件照常发布
type Seeder struct {
	authors *appauthor.UseCases
	books   *appbook.UseCases
	log     *zap.Logger
}

func New(authors *appauthor.UseCases, books *appbook.UseCases, log *zap.Logger) *Seeder {
	return &Seeder{authors: authors, books: books, log: log}
}

// Run 写入示例数据
// 已有作者时跳过(MySQL重启后不重复写入),返回是否执行了写入
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	existing, err := s.authors.List.Execute(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		s.log.Info("Catalog not empty, skip seeding", zap.Int("authors", len(existing)))
		return false, nil
	}

	authorIDs := make(map[string]string, len(authors))
	for _, a := range authors {
		res, err := s.authors.Create.Execute(ctx, appauthor.CreateAuthorRequest{
			FirstName: a.firstName,
			LastName:  a.lastName,
			Biography: a.biography,
		})
		if err != nil {
			return false, fmt.Errorf("创建作者%s %s失败: %w", a.firstName, a.lastName, err)
		}
		authorIDs[a.lastName] = res.ID
	}

	reviews := 0
	for _, b := range books {
		res, err := s.books.Create.Execute(ctx, appbook.CreateBookRequest{
			AuthorID:      authorIDs[b.author],
			Title:         b.title,
			ISBN:          b.isbn,
			Summary:       b.summary,
			PublishedYear: b.year,
			PageCount:     b.pages,
			Genres:        b.genres,
		})
		if err != nil {
			return false, fmt.Errorf("创建图书%q失败: %w", b.title, err)
		}

		for _, r := range b.reviews {
			if _, err := s.books.AddReview.Execute(ctx, appbook.AddReviewRequest{
				BookID:  res.ID,
				Rating:  r.rating,
				Comment: r.comment,
			}); err != nil {
				return false, fmt.Errorf("添加书评失败(%s): %w", b.title, err)
			}
			reviews++
		}
	}

	s.log.Info("Catalog seeded",
		zap.Int("authors", len(authors)),
		zap.Int("books", len(books)),
		zap.Int("reviews", reviews),
	)
	return true, nil
}
