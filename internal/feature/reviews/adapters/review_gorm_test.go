package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/feature/reviews/usecase"
	"review_backend/internal/platform/db"
	"review_backend/internal/platform/db/dbtest"
	"review_backend/internal/shared/pagination"
)

type fixture struct {
	gdb   *gorm.DB
	repo  *reviewGorm
	alice db.User
	bob   db.User
	item  db.Item
	other db.Item
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gdb := dbtest.Open(t)
	f := fixture{gdb: gdb, repo: NewReviewRepository(gdb)}
	f.alice = db.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	f.bob = db.User{Username: "bob", Email: "bob@example.com", Password: "hash"}
	f.item = db.Item{Name: "Dune"}
	f.other = db.Item{Name: "Hyperion"}
	for _, v := range []any{&f.alice, &f.bob, &f.item, &f.other} {
		require.NoError(t, gdb.Create(v).Error)
	}
	return f
}

func TestReviewGorm_CreateAndUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	review := &entity.Review{Rating: 5, Content: "great", UserID: f.alice.ID, ItemID: f.item.ID}
	require.NoError(t, f.repo.Create(ctx, review))
	assert.NotZero(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero())

	dup := &entity.Review{Rating: 1, Content: "again", UserID: f.alice.ID, ItemID: f.item.ID}
	assert.ErrorIs(t, f.repo.Create(ctx, dup), usecase.ErrAlreadyReviewed)

	// Same user, different item and same item, different user are fine.
	require.NoError(t, f.repo.Create(ctx, &entity.Review{Rating: 3, Content: "ok", UserID: f.alice.ID, ItemID: f.other.ID}))
	require.NoError(t, f.repo.Create(ctx, &entity.Review{Rating: 4, Content: "good", UserID: f.bob.ID, ItemID: f.item.ID}))

	found, err := f.repo.FindByUserAndItem(ctx, f.alice.ID, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	_, err = f.repo.FindByUserAndItem(ctx, f.bob.ID, f.other.ID)
	assert.ErrorIs(t, err, usecase.ErrReviewNotFound)

	assert.Error(t, f.repo.Create(ctx, nil))
}

func TestReviewGorm_Lists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []db.Review{
		{Rating: 5, Content: "a-dune", UserID: f.alice.ID, ItemID: f.item.ID, CreatedAt: base},
		{Rating: 4, Content: "b-dune", UserID: f.bob.ID, ItemID: f.item.ID, CreatedAt: base.Add(time.Hour)},
		{Rating: 3, Content: "a-hyperion", UserID: f.alice.ID, ItemID: f.other.ID, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, f.gdb.Create(&rows[i]).Error)
	}

	t.Run("for item, newest first", func(t *testing.T) {
		got, err := f.repo.ListForItem(ctx, f.item.ID, pagination.New(1, 10))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b-dune", got[0].Content)
		assert.Equal(t, "bob", got[0].Author)
		assert.Equal(t, "a-dune", got[1].Content)
	})

	t.Run("all items", func(t *testing.T) {
		got, err := f.repo.ListForItem(ctx, 0, pagination.New(1, 2))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a-hyperion", got[0].Content)
	})

	t.Run("by user", func(t *testing.T) {
		got, err := f.repo.ListByUser(ctx, f.alice.ID, pagination.New(1, 10))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a-hyperion", got[0].Content)
		assert.Equal(t, "a-dune", got[1].Content)

		got, err = f.repo.ListByUser(ctx, f.alice.ID, pagination.New(2, 1))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a-dune", got[0].Content)
	})
}

func TestReviewGorm_FindUpdateDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	review := db.Review{Rating: 2, Content: "meh", UserID: f.alice.ID, ItemID: f.item.ID}
	require.NoError(t, f.gdb.Create(&review).Error)
	require.NoError(t, f.gdb.Create(&db.Comment{Content: "why?", UserID: f.bob.ID, ReviewID: review.ID}).Error)

	got, err := f.repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "bob", got.Comments[0].Author)

	got.Rating = 4
	got.Content = "better on reread"
	require.NoError(t, f.repo.Update(ctx, got))

	var stored db.Review
	require.NoError(t, f.gdb.First(&stored, review.ID).Error)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, "better on reread", stored.Content)

	require.NoError(t, f.repo.Delete(ctx, review.ID))
	var comments int64
	require.NoError(t, f.gdb.Model(&db.Comment{}).Count(&comments).Error)
	assert.Zero(t, comments, "comments cascade with the review")

	_, err = f.repo.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, usecase.ErrReviewNotFound)
	assert.ErrorIs(t, f.repo.Delete(ctx, review.ID), usecase.ErrReviewNotFound)
	assert.ErrorIs(t, f.repo.Update(ctx, &entity.Review{ID: review.ID, Rating: 1}), usecase.ErrReviewNotFound)
}

func TestReviewGorm_ItemExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.repo.ItemExists(ctx, f.item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.repo.ItemExists(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewGorm_RatingCheckConstraint(t *testing.T) {
	f := newFixture(t)

	err := f.gdb.Create(&db.Review{Rating: 6, Content: "too good", UserID: f.alice.ID, ItemID: f.item.ID}).Error
	assert.Error(t, err)
}
