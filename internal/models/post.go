package models

import "time"

// Post represents a blog post.
//
// PubDate is set once at creation and never mutated afterwards; the default
// listing order is newest first. GroupID is optional and is cleared (not
// cascaded) when the group is deleted.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	PubDate  time.Time `gorm:"autoCreateTime;index" json:"pub_date"`
	GroupID  *uint     `gorm:"index" json:"group_id,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
