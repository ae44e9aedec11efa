package repository

import (
	"context"
	"strconv"

	"tribune/internal/models"
	"tribune/internal/query"

	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, opts *query.ListOptions) ([]models.Article, error)
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	IncrementVotes(ctx context.Context, id uint, delta int) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, opts *query.ListOptions) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Scopes(opts.Scope()).Find(&articles).Error; err != nil {
		return nil, translateError(err)
	}
	return articles, nil
}

// GetByID returns one article with its comment_count aggregate. The count is
// carried as a string on the wire.
func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "article_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("article_id = ?", id).Count(&count).Error; err != nil {
		return nil, translateError(err)
	}
	article.CommentCount = strconv.FormatInt(count, 10)

	return &article, nil
}

func (r *articleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("article_id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.Title == "" || article.Topic == "" || article.Author == "" ||
		article.Body == "" || article.CreatedAt.IsZero() {
		return models.NewMissingInfoError()
	}
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// IncrementVotes applies the delta as a single in-database increment so
// concurrent patches never lose updates.
func (r *articleRepository) IncrementVotes(ctx context.Context, id uint, delta int) (*models.Article, error) {
	res := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError()
	}

	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "article_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &article, nil
}

// Delete removes the article and every comment referencing it in one
// transaction, so a partial failure never leaves orphaned comments.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return translateError(err)
		}
		res := tx.Delete(&models.Article{}, "article_id = ?", id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError()
		}
		return nil
	})
}
