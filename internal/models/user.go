package models

// User represents a registered author in the Tribune application.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url;not null" json:"avatar_url"`
}
