package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCommentTextLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type AddCommentInput struct {
	AuthorID uint
	PostID   uint
	Text     string
}

type UpdateCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
	Text      string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment attaches a comment to an existing post. The author comes
// from the authenticated session.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Text:     in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments newest first. The post must
// exist even if it has no comments yet.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("comment", commentID)
	}
	return comment, nil
}

// UpdateComment rewrites a comment's text. Only the comment's author
// may edit it; the creation timestamp is never touched.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	comment, err := s.GetComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}

	if err := s.commentRepo.Update(ctx, in.CommentID, in.Text); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, in.CommentID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, in.CommentID)
}
