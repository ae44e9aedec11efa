package repository

import (
	"fmt"
	"testing"
	"time"

	"tribune/internal/database"
	"tribune/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database. The shared-cache DSN keeps
// the schema visible across pooled connections; the test name keeps databases
// isolated between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	topics := []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
	require.NoError(t, db.Create(&topics).Error)

	users := []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/sam.jpg"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://example.com/paul.jpg"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/lurker.jpg"},
	}
	require.NoError(t, db.Create(&users).Error)

	base := time.Date(2020, time.July, 9, 20, 11, 0, 0, time.UTC)
	articles := []models.Article{
		{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", Votes: 100, CreatedAt: base},
		{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", CreatedAt: base.AddDate(0, 0, -30)},
		{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", CreatedAt: base.AddDate(0, 0, -60)},
		{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us", CreatedAt: base.AddDate(0, 0, -90)},
	}
	require.NoError(t, db.Create(&articles).Error)

	comments := []models.Comment{
		{Author: "butter_bridge", ArticleID: 1, Votes: 16,
			Body: "This morning, I showered for nine minutes.", CreatedAt: base.AddDate(0, 0, 1)},
		{Author: "icellusedkars", ArticleID: 1, Votes: 14,
			Body: "I hate streamed coffee", CreatedAt: base.AddDate(0, 0, 2)},
		{Author: "icellusedkars", ArticleID: 2, Votes: 100,
			Body: "Fruit pastilles", CreatedAt: base.AddDate(0, 0, 3)},
	}
	require.NoError(t, db.Create(&comments).Error)
}

// requireAPIError asserts the error carries the given fixed message.
func requireAPIError(t *testing.T, err error, msg string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, msg, apiErr.Msg)
}
