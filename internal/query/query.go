// Package query translates untrusted list-endpoint parameters into validated
// gorm query scopes. Every column name is checked against a fixed allow-list
// before it is allowed anywhere near SQL.
package query

import (
	"strconv"
	"strings"

	"tribune/internal/models"

	"gorm.io/gorm"
)

// commentCountExpr orders articles by their comment count without requiring
// the aggregate to be selected.
const commentCountExpr = "(SELECT count(*) FROM comments WHERE comments.article_id = articles.article_id)"

var articleSortColumns = map[string]struct{}{
	"created_at":    {},
	"votes":         {},
	"title":         {},
	"author":        {},
	"topic":         {},
	"article_id":    {},
	"comment_count": {},
}

var commentSortColumns = map[string]struct{}{
	"created_at": {},
	"votes":      {},
	"author":     {},
}

// ListOptions holds validated filtering, sorting and bounding parameters for
// a list query. Construct it through ParseArticleList or ParseCommentList;
// the zero value is not usable.
type ListOptions struct {
	SortBy string
	Order  string
	Author string
	Topic  string
	Limit  int

	// tieBreak is the table's primary key, appended as a stable secondary
	// sort so equal primary keys keep a deterministic order.
	tieBreak string
}

// ParseArticleList validates article list parameters. Empty strings take the
// documented defaults; anything unrecognized fails with BAD REQUEST.
func ParseArticleList(sortBy, order, author, topic, limit string) (*ListOptions, error) {
	opts, err := parse(sortBy, order, limit, articleSortColumns)
	if err != nil {
		return nil, err
	}
	opts.Author = author
	opts.Topic = topic
	opts.tieBreak = "article_id"
	return opts, nil
}

// ParseCommentList validates comment list parameters.
func ParseCommentList(sortBy, order, limit string) (*ListOptions, error) {
	opts, err := parse(sortBy, order, limit, commentSortColumns)
	if err != nil {
		return nil, err
	}
	opts.tieBreak = "comments_id"
	return opts, nil
}

func parse(sortBy, order, limit string, allowed map[string]struct{}) (*ListOptions, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if _, ok := allowed[sortBy]; !ok {
		return nil, models.NewBadRequestError()
	}

	switch strings.ToLower(order) {
	case "":
		order = "desc"
	case "asc", "desc":
		order = strings.ToLower(order)
	default:
		// Unrecognized non-empty order values are rejected rather than
		// silently defaulted.
		return nil, models.NewBadRequestError()
	}

	bound := 0
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return nil, models.NewBadRequestError()
		}
		bound = n
	}

	return &ListOptions{SortBy: sortBy, Order: order, Limit: bound}, nil
}

// Scope applies the validated options to a gorm query chain. Safe by
// construction: SortBy and Order have passed the allow-lists above, and the
// filter values are bound as parameters.
func (o *ListOptions) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sortExpr := o.SortBy
		if o.SortBy == "comment_count" {
			sortExpr = commentCountExpr
		}
		db = db.Order(sortExpr + " " + o.Order)
		if o.tieBreak != "" && o.SortBy != o.tieBreak {
			db = db.Order(o.tieBreak + " asc")
		}
		if o.Author != "" {
			db = db.Where("author = ?", o.Author)
		}
		if o.Topic != "" {
			db = db.Where("topic = ?", o.Topic)
		}
		if o.Limit > 0 {
			db = db.Limit(o.Limit)
		}
		return db
	}
}
