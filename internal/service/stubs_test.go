package service

import (
	"context"

	"inkwell/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context, int, int) ([]*models.Post, error)
	listByGroupFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	listByAuthorFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	listFeedFn      func(context.Context, uint, int, int) ([]*models.Post, error)
	countFn         func(context.Context) (int64, error)
	countByGroupFn  func(context.Context, uint) (int64, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	countFeedFn     func(context.Context, uint) (int64, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) ListFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFeedFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) CountFeed(ctx context.Context, userID uint) (int64, error) {
	return s.countFeedFn(ctx, userID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// groupRepoStub is a stub for repository.GroupRepository.
type groupRepoStub struct {
	createFn     func(context.Context, *models.Group) error
	getByIDFn    func(context.Context, uint) (*models.Group, error)
	getBySlugFn  func(context.Context, string) (*models.Group, error)
	listFn       func(context.Context) ([]*models.Group, error)
	slugExistsFn func(context.Context, string) (bool, error)
	updateFn     func(context.Context, *models.Group) error
	deleteFn     func(context.Context, uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context) ([]*models.Group, error) {
	return s.listFn(ctx)
}
func (s *groupRepoStub) SlugExists(ctx context.Context, slug string) (bool, error) {
	return s.slugExistsFn(ctx, slug)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.Group) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn     func(context.Context, uint, string) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, id uint, text string) error {
	return s.updateFn(ctx, id, text)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn     func(context.Context, uint, uint) error
	deleteFn     func(context.Context, uint, uint) error
	existsFn     func(context.Context, uint, uint) (bool, error)
	listByUserFn func(context.Context, uint, string) ([]*models.Follow, error)
}

func (s *followRepoStub) Create(ctx context.Context, userID, authorID uint) error {
	return s.createFn(ctx, userID, authorID)
}
func (s *followRepoStub) Delete(ctx context.Context, userID, authorID uint) error {
	return s.deleteFn(ctx, userID, authorID)
}
func (s *followRepoStub) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.existsFn(ctx, userID, authorID)
}
func (s *followRepoStub) ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	return s.listByUserFn(ctx, userID, search)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
