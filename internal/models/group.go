package models

// Group is a topical community posts can be filed under. The slug is
// the group's URL identity and is unique.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Description string `json:"description"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}
