// Package service implements the application's business rules on top of
// the repository layer.
package service

import (
	"context"
	"net/url"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/pagination"
	"inkwell/internal/repository"
)

const maxPostTextLen = 50000

type PostService struct {
	postRepo     repository.PostRepository
	groupRepo    repository.GroupRepository
	itemsPerPage int
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, itemsPerPage int) *PostService {
	return &PostService{
		postRepo:     postRepo,
		groupRepo:    groupRepo,
		itemsPerPage: itemsPerPage,
	}
}

func (s *PostService) validatePostInput(ctx context.Context, text, imageURL string, groupID *uint) error {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return models.NewValidationError("Text too long (max 50000 characters)")
	}
	if imageURL != "" {
		if _, err := url.ParseRequestURI(imageURL); err != nil {
			return models.NewValidationError("image_url must be a valid URL")
		}
	}
	if groupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
			return err
		}
	}
	return nil
}

// CreatePost publishes a post. The author always comes from the
// authenticated session, never from the request body.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validatePostInput(ctx, in.Text, in.ImageURL, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost edits a post's text, group, or image. Only the author may
// edit, and the publication date is preserved.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}
	if err := s.validatePostInput(ctx, in.Text, in.ImageURL, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}

// ListPosts returns a slice of the global timeline for the API surface.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

func (s *PostService) ListGroupPosts(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListByGroup(ctx, groupID, limit, offset)
}

// page assembles a clamped page for the web surface: an out-of-range
// page number lands on the nearest valid page instead of erroring.
func (s *PostService) page(ctx context.Context, pageNum int, count func() (int64, error), list func(limit, offset int) ([]*models.Post, error)) (pagination.Page[*models.Post], error) {
	var empty pagination.Page[*models.Post]
	total, err := count()
	if err != nil {
		return empty, err
	}
	pageNum = pagination.ClampPage(pageNum, int(total), s.itemsPerPage)
	limit, offset := pagination.Window(pageNum, s.itemsPerPage)
	posts, err := list(limit, offset)
	if err != nil {
		return empty, err
	}
	return pagination.NewPage(posts, pageNum, s.itemsPerPage, int(total)), nil
}

// IndexPage is the paginated global timeline.
func (s *PostService) IndexPage(ctx context.Context, pageNum int) (pagination.Page[*models.Post], error) {
	return s.page(ctx, pageNum,
		func() (int64, error) { return s.postRepo.Count(ctx) },
		func(limit, offset int) ([]*models.Post, error) { return s.postRepo.List(ctx, limit, offset) },
	)
}

// GroupPage is the paginated timeline of a single group.
func (s *PostService) GroupPage(ctx context.Context, groupID uint, pageNum int) (pagination.Page[*models.Post], error) {
	return s.page(ctx, pageNum,
		func() (int64, error) { return s.postRepo.CountByGroup(ctx, groupID) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListByGroup(ctx, groupID, limit, offset)
		},
	)
}

// ProfilePage is the paginated timeline of a single author.
func (s *PostService) ProfilePage(ctx context.Context, authorID uint, pageNum int) (pagination.Page[*models.Post], error) {
	return s.page(ctx, pageNum,
		func() (int64, error) { return s.postRepo.CountByAuthor(ctx, authorID) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
		},
	)
}

// FeedPage is the paginated timeline of authors the user follows.
func (s *PostService) FeedPage(ctx context.Context, userID uint, pageNum int) (pagination.Page[*models.Post], error) {
	return s.page(ctx, pageNum,
		func() (int64, error) { return s.postRepo.CountFeed(ctx, userID) },
		func(limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListFeed(ctx, userID, limit, offset)
		},
	)
}

func (s *PostService) CountUserPosts(ctx context.Context, authorID uint) (int64, error) {
	return s.postRepo.CountByAuthor(ctx, authorID)
}
