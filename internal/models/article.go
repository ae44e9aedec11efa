package models

import "time"

// Article represents a published article in the Tribune application.
// Topic and Author reference Topic.Slug and User.Username respectively;
// they are plain columns rather than enforced foreign keys.
type Article struct {
	ArticleID uint      `gorm:"column:article_id;primaryKey" json:"article_id"`
	Title     string    `gorm:"not null" json:"title"`
	Topic     string    `gorm:"not null;index" json:"topic"`
	Author    string    `gorm:"not null;index" json:"author"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	// CommentCount is not persisted; computed at query time. It is kept as a
	// string on the wire for compatibility with existing API consumers.
	CommentCount string `gorm:"-" json:"comment_count,omitempty"`
}
