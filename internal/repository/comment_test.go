package repository

import (
	"context"
	"testing"
	"time"

	"tribune/internal/models"
	"tribune/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCommentOpts(t *testing.T, sortBy, order, limit string) *query.ListOptions {
	t.Helper()

	opts, err := query.ParseCommentList(sortBy, order, limit)
	require.NoError(t, err)
	return opts
}

func TestCommentRepository_ListByArticle(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Default Order Newest First", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, 1, mustCommentOpts(t, "", "", ""))
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "I hate streamed coffee", comments[0].Body)
	})

	t.Run("Sort By Votes", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, 1, mustCommentOpts(t, "votes", "asc", ""))
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, 14, comments[0].Votes)
		assert.Equal(t, 16, comments[1].Votes)
	})

	t.Run("Limit Bounds Result", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, 1, mustCommentOpts(t, "", "", "1"))
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("Article Without Comments Is Empty", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, 4, mustCommentOpts(t, "", "", ""))
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentRepository_Create(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		comment := &models.Comment{
			Author: "lurker", ArticleID: 4, Body: "first", CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, comment))
		assert.NotZero(t, comment.CommentID)
		assert.Zero(t, comment.Votes)
	})

	t.Run("Missing Body", func(t *testing.T) {
		err := repo.Create(ctx, &models.Comment{Author: "lurker", ArticleID: 4})
		requireAPIError(t, err, models.MsgMissingInfo)
	})

	t.Run("Missing Author", func(t *testing.T) {
		err := repo.Create(ctx, &models.Comment{ArticleID: 4, Body: "anonymous"})
		requireAPIError(t, err, models.MsgMissingInfo)
	})
}

func TestCommentRepository_IncrementVotes(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Positive Delta", func(t *testing.T) {
		comment, err := repo.IncrementVotes(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 20, comment.Votes)
	})

	t.Run("Negative Delta", func(t *testing.T) {
		comment, err := repo.IncrementVotes(ctx, 1, -20)
		require.NoError(t, err)
		assert.Equal(t, 0, comment.Votes)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := repo.IncrementVotes(ctx, 999, 1)
		requireAPIError(t, err, models.MsgNotFound)
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 1))

		var remaining int64
		require.NoError(t, db.Model(&models.Comment{}).
			Where("comments_id = ?", 1).Count(&remaining).Error)
		assert.Zero(t, remaining)
	})

	t.Run("Not Found", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		requireAPIError(t, err, models.MsgNotFound)
	})
}
