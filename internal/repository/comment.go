package repository

import (
	"context"

	"tribune/internal/models"
	"tribune/internal/query"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID uint, opts *query.ListOptions) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, id uint, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle returns the article's comments; an empty result is success,
// callers decide whether the article itself exists.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID uint, opts *query.ListOptions) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Scopes(opts.Scope()).
		Find(&comments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.Author == "" || comment.Body == "" || comment.ArticleID == 0 {
		return models.NewMissingInfoError()
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// IncrementVotes applies the delta as a single in-database increment so
// concurrent patches never lose updates.
func (r *commentRepository) IncrementVotes(ctx context.Context, id uint, delta int) (*models.Comment, error) {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("comments_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError()
	}

	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "comments_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, "comments_id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError()
	}
	return nil
}
