package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/infrastructure/idgen"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixture struct {
	ctx      context.Context
	books    *appbook.UseCases
	authors  *appauthor.UseCases
	recorder *event.Recorder
	clock    fixedClock
	authorID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bookRepo := memory.NewBookRepository()
	authorRepo := memory.NewAuthorRepository()
	ids := idgen.New()
	clock := fixedClock{t: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	recorder := &event.Recorder{}
	publisher := event.Stamped(recorder, clock)

	f := &fixture{
		ctx:      context.Background(),
		books:    appbook.NewUseCases(bookRepo, authorRepo, book.NewService(bookRepo, ids, clock), publisher),
		authors:  appauthor.NewUseCases(authorRepo, author.NewService(authorRepo, bookRepo, ids), publisher),
		recorder: recorder,
		clock:    clock,
	}

	resp, err := f.authors.Create.Execute(f.ctx, appauthor.CreateAuthorRequest{
		FirstName: "George",
		LastName:  "Orwell",
		Biography: "English novelist and essayist.",
	})
	require.NoError(t, err)
	f.authorID = resp.ID
	recorder.Reset()
	return f
}

func (f *fixture) create1984(t *testing.T) string {
	t.Helper()
	resp, err := f.books.Create.Execute(f.ctx, appbook.CreateBookRequest{
		AuthorID:      f.authorID,
		Title:         "1984",
		ISBN:          "978-0-452-28423-4",
		Summary:       "A dystopian novel set in a totalitarian society.",
		PublishedYear: 1949,
		PageCount:     328,
		Genres:        []string{"Fiction", "Sci-Fi", "Thriller"},
	})
	require.NoError(t, err)
	return resp.ID
}

func TestCreateBook_RoundTrip(t *testing.T) {
	f := newFixture(t)
	id := f.create1984(t)

	rm, err := f.books.GetByID.Execute(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "1984", rm.Title)
	assert.Equal(t, "978-0-452-28423-4", rm.ISBN)
	assert.Equal(t, 1949, rm.PublishedYear)
	assert.Equal(t, 328, rm.PageCount)
	assert.Equal(t, f.authorID, rm.AuthorID)
	assert.Equal(t, 0, rm.ReviewCount)
	assert.Nil(t, rm.AverageRating)
	assert.Equal(t, []appbook.GenreReadModel{{Name: "Fiction"}, {Name: "Sci-Fi"}, {Name: "Thriller"}}, rm.Genres)
	assert.Empty(t, rm.Reviews)

	assert.Equal(t, []string{"BookCreated"}, f.recorder.Names())
}

func TestCreateBook_Failures(t *testing.T) {
	f := newFixture(t)
	f.create1984(t)

	base := appbook.CreateBookRequest{
		AuthorID:      f.authorID,
		Title:         "Animal Farm",
		ISBN:          "978-0-451-52634-2",
		Summary:       "An allegorical novella.",
		PublishedYear: 1945,
		PageCount:     112,
		Genres:        []string{"Fiction"},
	}

	tests := []struct {
		name   string
		modify func(r *appbook.CreateBookRequest)
		code   string
	}{
		{"作者不存在", func(r *appbook.CreateBookRequest) { r.AuthorID = "missing" }, author.CodeAuthorNotFound},
		{"ISBN重复", func(r *appbook.CreateBookRequest) { r.ISBN = "9780452284234" }, book.CodeDuplicateISBN},
		{"ISBN非法", func(r *appbook.CreateBookRequest) { r.ISBN = "978-0-451-52634-3" }, book.CodeInvalidISBN},
		{"分类为空", func(r *appbook.CreateBookRequest) { r.Genres = nil }, apperrors.CodeRequiredField},
		{"分类名为空", func(r *appbook.CreateBookRequest) { r.Genres = []string{""} }, book.CodeEmptyGenreName},
		{"分类重复", func(r *appbook.CreateBookRequest) { r.Genres = []string{"Drama", "drama"} }, book.CodeDuplicateGenre},
		{"页数为0", func(r *appbook.CreateBookRequest) { r.PageCount = 0 }, book.CodeInvalidPageCount},
		{"年份越界", func(r *appbook.CreateBookRequest) { r.PublishedYear = 10000 }, book.CodeInvalidPublishedYear},
		{"书名为空", func(r *appbook.CreateBookRequest) { r.Title = " " }, book.CodeEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.recorder.Reset()
			req := base
			tt.modify(&req)
			_, err := f.books.Create.Execute(f.ctx, req)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
			assert.Empty(t, f.recorder.Names(), "失败时不发布事件")
		})
	}
}

func TestChangeBook(t *testing.T) {
	f := newFixture(t)
	id := f.create1984(t)
	f.recorder.Reset()

	t.Run("相同书名无事件", func(t *testing.T) {
		require.NoError(t, f.books.ChangeTitle.Execute(f.ctx, appbook.ChangeBookTitleRequest{BookID: id, Title: "1984"}))
		assert.Empty(t, f.recorder.Names())
	})

	t.Run("修改书名", func(t *testing.T) {
		require.NoError(t, f.books.ChangeTitle.Execute(f.ctx, appbook.ChangeBookTitleRequest{BookID: id, Title: "Nineteen Eighty-Four"}))
		rm, err := f.books.GetByID.Execute(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Nineteen Eighty-Four", rm.Title)
		assert.Equal(t, []string{"BookTitleChanged"}, f.recorder.Names())
	})

	t.Run("ISBN改为当前值是空操作", func(t *testing.T) {
		f.recorder.Reset()
		require.NoError(t, f.books.ChangeISBN.Execute(f.ctx, appbook.ChangeBookISBNRequest{BookID: id, ISBN: "978-0-452-28423-4"}))
		assert.Empty(t, f.recorder.Names())
	})

	t.Run("ISBN与其他图书冲突", func(t *testing.T) {
		other, err := f.books.Create.Execute(f.ctx, appbook.CreateBookRequest{
			AuthorID: f.authorID, Title: "Animal Farm", ISBN: "978-0-451-52634-2",
			Summary: "Allegory.", PublishedYear: 1945, PageCount: 112, Genres: []string{"Fiction"},
		})
		require.NoError(t, err)
		err = f.books.ChangeISBN.Execute(f.ctx, appbook.ChangeBookISBNRequest{BookID: other.ID, ISBN: "978-0-452-28423-4"})
		assert.Equal(t, book.CodeDuplicateISBN, apperrors.CodeOf(err))
	})

	t.Run("修改简介", func(t *testing.T) {
		f.recorder.Reset()
		require.NoError(t, f.books.ChangeSummary.Execute(f.ctx, appbook.ChangeBookSummaryRequest{BookID: id, Summary: "Big Brother is watching."}))
		assert.Equal(t, []string{"BookSummaryChanged"}, f.recorder.Names())
	})

	t.Run("图书不存在", func(t *testing.T) {
		err := f.books.ChangeSummary.Execute(f.ctx, appbook.ChangeBookSummaryRequest{BookID: "missing", Summary: "x"})
		assert.Equal(t, book.CodeBookNotFound, apperrors.CodeOf(err))
	})
}

func TestGenres(t *testing.T) {
	f := newFixture(t)
	id := f.create1984(t)

	err := f.books.AddGenre.Execute(f.ctx, appbook.GenreRequest{BookID: id, Genre: "fiction"})
	assert.Equal(t, book.CodeDuplicateGenre, apperrors.CodeOf(err))

	require.NoError(t, f.books.RemoveGenre.Execute(f.ctx, appbook.GenreRequest{BookID: id, Genre: "sci-fi"}))
	require.NoError(t, f.books.RemoveGenre.Execute(f.ctx, appbook.GenreRequest{BookID: id, Genre: "Thriller"}))

	err = f.books.RemoveGenre.Execute(f.ctx, appbook.GenreRequest{BookID: id, Genre: "Fiction"})
	assert.Equal(t, book.CodeLastGenreRemoval, apperrors.CodeOf(err))

	require.NoError(t, f.books.AddGenre.Execute(f.ctx, appbook.GenreRequest{BookID: id, Genre: "Classic"}))
	rm, err := f.books.GetByID.Execute(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []appbook.GenreReadModel{{Name: "Fiction"}, {Name: "Classic"}}, rm.Genres)
}

func TestReviews(t *testing.T) {
	f := newFixture(t)
	id := f.create1984(t)

	reviewIDs := make([]string, 0, 3)
	for _, rating := range []int{5, 4, 5} {
		resp, err := f.books.AddReview.Execute(f.ctx, appbook.AddReviewRequest{BookID: id, Rating: rating, Comment: "Good."})
		require.NoError(t, err)
		reviewIDs = append(reviewIDs, resp.ReviewID)
	}

	rm, err := f.books.GetByID.Execute(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, rm.ReviewCount)
	require.NotNil(t, rm.AverageRating)
	assert.InDelta(t, 4.6667, *rm.AverageRating, 0.0001)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), rm.Reviews[0].CreatedAt)

	_, err = f.books.AddReview.Execute(f.ctx, appbook.AddReviewRequest{BookID: id, Rating: 6, Comment: "x"})
	assert.Equal(t, book.CodeInvalidRating, apperrors.CodeOf(err))

	require.NoError(t, f.books.RemoveReview.Execute(f.ctx, appbook.RemoveReviewRequest{BookID: id, ReviewID: reviewIDs[1]}))
	err = f.books.RemoveReview.Execute(f.ctx, appbook.RemoveReviewRequest{BookID: id, ReviewID: reviewIDs[1]})
	assert.Equal(t, book.CodeReviewNotFound, apperrors.CodeOf(err))

	rm, err = f.books.GetByID.Execute(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, rm.ReviewCount)
	assert.InDelta(t, 5.0, *rm.AverageRating, 1e-9)
}

func TestEventTimes(t *testing.T) {
	f := newFixture(t)
	id := f.create1984(t)

	require.NoError(t, f.books.ChangeTitle.Execute(f.ctx, appbook.ChangeBookTitleRequest{BookID: id, Title: "Nineteen Eighty-Four"}))
	_, err := f.books.AddReview.Execute(f.ctx, appbook.AddReviewRequest{BookID: id, Rating: 5, Comment: "Chilling."})
	require.NoError(t, err)
	require.NoError(t, f.books.Delete.Execute(f.ctx, id))

	events := f.recorder.Events()
	assert.Equal(t, []string{"BookCreated", "BookTitleChanged", "ReviewAdded", "BookDeleted"}, f.recorder.Names())
	for _, e := range events {
		assert.Equal(t, f.clock.t, e.OccurredAt(), "%s使用注入时钟", e.EventName())
	}
}

func TestQueriesAndDelete(t *testing.T) {
	f := newFixture(t)

	all, err := f.books.List.Execute(f.ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	id := f.create1984(t)

	byAuthor, err := f.books.ListByAuthor.Execute(f.ctx, f.authorID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, id, byAuthor[0].ID)

	none, err := f.books.ListByAuthor.Execute(f.ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)

	t.Run("作者有图书时不能删除", func(t *testing.T) {
		err := f.authors.Delete.Execute(f.ctx, f.authorID)
		assert.Equal(t, author.CodeAuthorHasBooks, apperrors.CodeOf(err))
	})

	t.Run("删除图书后可删除作者", func(t *testing.T) {
		f.recorder.Reset()
		require.NoError(t, f.books.Delete.Execute(f.ctx, id))
		_, err := f.books.GetByID.Execute(f.ctx, id)
		assert.Equal(t, book.CodeBookNotFound, apperrors.CodeOf(err))

		require.NoError(t, f.authors.Delete.Execute(f.ctx, f.authorID))
		assert.Equal(t, []string{"BookDeleted", "AuthorDeleted"}, f.recorder.Names())
	})

	t.Run("重复删除", func(t *testing.T) {
		err := f.books.Delete.Execute(f.ctx, id)
		assert.Equal(t, book.CodeBookNotFound, apperrors.CodeOf(err))
	})
}
