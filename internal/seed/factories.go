// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
	n  int
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a user with the shared development password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	f.n++
	username := fmt.Sprintf("%s%d", gofakeit.Username(), f.n)
	user := &models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		Password:  devPasswordHash(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	for _, override := range overrides {
		override(user)
	}
	return user, f.db.Create(user).Error
}

// CreateGroup persists a group whose slug is derived from the title.
func (f *Factory) CreateGroup(title string) (*models.Group, error) {
	group := &models.Group{
		Title:       title,
		Slug:        slug.Make(title),
		Description: gofakeit.Sentence(12),
	}
	return group, f.db.Create(group).Error
}

// BuildPost constructs a post without persisting it.
func (f *Factory) BuildPost(authorID uint, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		AuthorID: authorID,
		Text:     gofakeit.Paragraph(1, 3, 12, " "),
	}
	if f.r.Float32() < 0.2 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%d/800/600", f.r.Intn(1000))
	}
	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreateComment persists a comment on the given post.
func (f *Factory) CreateComment(postID, authorID uint) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     gofakeit.Sentence(10),
	}
	return comment, f.db.Create(comment).Error
}

var devHash string

// devPasswordHash hashes the shared password once and reuses it.
func devPasswordHash() string {
	if devHash == "" {
		h, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		devHash = string(h)
	}
	return devHash
}
