package repository

import (
	"context"

	"tribune/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.WithContext(ctx).Order("slug asc").Find(&topics).Error; err != nil {
		return nil, translateError(err)
	}
	return topics, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if topic.Slug == "" || topic.Description == "" {
		return models.NewMissingInfoError()
	}
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return translateError(err)
	}
	return nil
}
