package author_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/infrastructure/idgen"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func newUseCases() (*appauthor.UseCases, *event.Recorder) {
	repo := memory.NewAuthorRepository()
	recorder := &event.Recorder{}
	svc := author.NewService(repo, memory.NewBookRepository(), idgen.New())
	return appauthor.NewUseCases(repo, svc, recorder), recorder
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()
	uc, recorder := newUseCases()

	resp, err := uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "Jane", LastName: "Austen", Biography: "English novelist."})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []string{"AuthorCreated"}, recorder.Names())

	rm, err := uc.GetByID.Execute(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, appauthor.NameReadModel{FirstName: "Jane", LastName: "Austen", FullName: "Jane Austen"}, rm.Name)
	assert.Equal(t, "English novelist.", rm.Biography)

	t.Run("重名", func(t *testing.T) {
		_, err := uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "Jane", LastName: "Austen", Biography: "Other."})
		assert.Equal(t, author.CodeDuplicateName, apperrors.CodeOf(err))
	})

	t.Run("校验失败", func(t *testing.T) {
		_, err := uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "", LastName: "Austen", Biography: "x"})
		assert.Equal(t, author.CodeEmptyName, apperrors.CodeOf(err))
		_, err = uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "A", LastName: "B", Biography: ""})
		assert.Equal(t, author.CodeEmptyBiography, apperrors.CodeOf(err))
	})
}

func TestChangeAuthor(t *testing.T) {
	ctx := context.Background()
	uc, recorder := newUseCases()

	orwell, err := uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "George", LastName: "Orwell", Biography: "Novelist."})
	require.NoError(t, err)
	_, err = uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "Harper", LastName: "Lee", Biography: "Novelist."})
	require.NoError(t, err)
	recorder.Reset()

	t.Run("改成自己的名字是空操作", func(t *testing.T) {
		require.NoError(t, uc.ChangeName.Execute(ctx, appauthor.ChangeAuthorNameRequest{AuthorID: orwell.ID, FirstName: "George", LastName: "Orwell"}))
		assert.Empty(t, recorder.Names())
	})

	t.Run("改成他人名字", func(t *testing.T) {
		err := uc.ChangeName.Execute(ctx, appauthor.ChangeAuthorNameRequest{AuthorID: orwell.ID, FirstName: "Harper", LastName: "Lee"})
		assert.Equal(t, author.CodeDuplicateName, apperrors.CodeOf(err))
	})

	t.Run("改名", func(t *testing.T) {
		require.NoError(t, uc.ChangeName.Execute(ctx, appauthor.ChangeAuthorNameRequest{AuthorID: orwell.ID, FirstName: "Eric", LastName: "Blair"}))
		rm, err := uc.GetByID.Execute(ctx, orwell.ID)
		require.NoError(t, err)
		assert.Equal(t, "Eric Blair", rm.Name.FullName)
		assert.Equal(t, []string{"AuthorNameChanged"}, recorder.Names())
	})

	t.Run("修改简介", func(t *testing.T) {
		recorder.Reset()
		require.NoError(t, uc.ChangeBiography.Execute(ctx, appauthor.ChangeAuthorBiographyRequest{AuthorID: orwell.ID, Biography: "Novelist."}))
		assert.Empty(t, recorder.Names())
		require.NoError(t, uc.ChangeBiography.Execute(ctx, appauthor.ChangeAuthorBiographyRequest{AuthorID: orwell.ID, Biography: "Essayist."}))
		assert.Equal(t, []string{"AuthorBiographyChanged"}, recorder.Names())
	})

	t.Run("作者不存在", func(t *testing.T) {
		err := uc.ChangeBiography.Execute(ctx, appauthor.ChangeAuthorBiographyRequest{AuthorID: "missing", Biography: "x"})
		assert.Equal(t, author.CodeAuthorNotFound, apperrors.CodeOf(err))
	})
}

func TestListAndDeleteAuthors(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases()

	list, err := uc.List.Execute(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	resp, err := uc.Create.Execute(ctx, appauthor.CreateAuthorRequest{FirstName: "J.R.R.", LastName: "Tolkien", Biography: "Philologist."})
	require.NoError(t, err)

	list, err = uc.List.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete.Execute(ctx, resp.ID))
	assert.Equal(t, author.CodeAuthorNotFound, apperrors.CodeOf(uc.Delete.Execute(ctx, resp.ID)))

	_, err = uc.GetByID.Execute(ctx, resp.ID)
	assert.Equal(t, author.CodeAuthorNotFound, apperrors.CodeOf(err))
}
