package models

import "time"

// Comment represents a comment on an article in the Tribune application.
type Comment struct {
	CommentID uint      `gorm:"column:comments_id;primaryKey" json:"comments_id"`
	Author    string    `gorm:"not null" json:"author"`
	ArticleID uint      `gorm:"column:article_id;not null;index" json:"article_id"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `gorm:"not null" json:"body"`
}
