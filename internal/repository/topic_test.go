package repository

import (
	"context"
	"testing"

	"tribune/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicRepository_List(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	repo := NewTopicRepository(db)

	topics, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "cats", topics[0].Slug)
	assert.Equal(t, "mitch", topics[1].Slug)
	assert.Equal(t, "paper", topics[2].Slug)
}

func TestTopicRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		topic := &models.Topic{Slug: "coding", Description: "all things code"}
		require.NoError(t, repo.Create(ctx, topic))

		topics, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, topics, 1)
		assert.Equal(t, "coding", topics[0].Slug)
	})

	t.Run("Missing Description", func(t *testing.T) {
		err := repo.Create(ctx, &models.Topic{Slug: "empty"})
		requireAPIError(t, err, models.MsgMissingInfo)
	})

	t.Run("Missing Slug", func(t *testing.T) {
		err := repo.Create(ctx, &models.Topic{Description: "no slug"})
		requireAPIError(t, err, models.MsgMissingInfo)
	})
}
