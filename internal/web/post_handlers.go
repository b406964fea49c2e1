package web

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Index renders the global timeline, ten posts per page.
func (h *Handler) Index(c *fiber.Ctx) error {
	h.userContext(c)

	page, err := h.posts.IndexPage(c.Context(), pageNumber(c))
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{
		"Title": "Latest posts",
		"User":  h.currentUser(c),
		"Page":  page,
	})
}

// GroupPosts renders a group's timeline.
func (h *Handler) GroupPosts(c *fiber.Ctx) error {
	h.userContext(c)

	group, err := h.groups.GetGroupBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return h.NotFound(c)
	}

	page, err := h.posts.GroupPage(c.Context(), group.ID, pageNumber(c))
	if err != nil {
		return err
	}
	return c.Render("group", fiber.Map{
		"Title": group.Title,
		"User":  h.currentUser(c),
		"Group": group,
		"Page":  page,
	})
}

// Profile renders an author's page with their posts and a follow toggle.
func (h *Handler) Profile(c *fiber.Ctx) error {
	h.userContext(c)

	author, err := h.users.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return h.NotFound(c)
	}

	page, err := h.posts.ProfilePage(c.Context(), author.ID, pageNumber(c))
	if err != nil {
		return err
	}

	viewerID := h.sessionUserID(c)
	following, err := h.follows.IsFollowing(c.Context(), viewerID, author.ID)
	if err != nil {
		return err
	}

	return c.Render("profile", fiber.Map{
		"Title":     author.Username,
		"User":      h.currentUser(c),
		"Author":    author,
		"Page":      page,
		"Following": following,
		"IsOwner":   viewerID == author.ID,
	})
}

// PostDetail renders a single post with its comments and comment form.
func (h *Handler) PostDetail(c *fiber.Ctx) error {
	h.userContext(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.NotFound(c)
	}

	post, err := h.posts.GetPost(c.Context(), uint(id))
	if err != nil {
		return h.NotFound(c)
	}

	comments, err := h.comments.ListComments(c.Context(), post.ID)
	if err != nil {
		return err
	}

	return c.Render("post_detail", fiber.Map{
		"Title":    "Post by " + post.Author.Username,
		"User":     h.currentUser(c),
		"Post":     post,
		"Comments": comments,
		"IsAuthor": h.sessionUserID(c) == post.AuthorID,
	})
}

// PostCreateForm renders the new-post form.
func (h *Handler) PostCreateForm(c *fiber.Ctx) error {
	h.userContext(c)

	groups, err := h.groups.ListGroups(c.Context())
	if err != nil {
		return err
	}
	return c.Render("post_form", fiber.Map{
		"Title":         "New post",
		"User":          h.currentUser(c),
		"Groups":        groups,
		"Edit":          false,
		"SelectedGroup": uint(0),
	})
}

// PostCreate publishes a post and sends the author to their profile.
func (h *Handler) PostCreate(c *fiber.Ctx) error {
	h.userContext(c)
	userID := h.sessionUserID(c)

	post, err := h.posts.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Text:     c.FormValue("text"),
		GroupID:  formGroupID(c),
		ImageURL: c.FormValue("image_url"),
	})
	if err != nil {
		return h.renderPostFormError(c, err, false, nil)
	}

	user, err := h.users.GetByID(c.Context(), post.AuthorID)
	if err != nil {
		return err
	}
	return c.Redirect("/profile/"+user.Username, fiber.StatusFound)
}

// PostEditForm renders the edit form; non-authors are bounced to the
// post page instead of seeing an error.
func (h *Handler) PostEditForm(c *fiber.Ctx) error {
	h.userContext(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.NotFound(c)
	}

	post, err := h.posts.GetPost(c.Context(), uint(id))
	if err != nil {
		return h.NotFound(c)
	}
	if post.AuthorID != h.sessionUserID(c) {
		return c.Redirect("/posts/"+c.Params("id"), fiber.StatusFound)
	}

	groups, err := h.groups.ListGroups(c.Context())
	if err != nil {
		return err
	}
	return c.Render("post_form", fiber.Map{
		"Title":         "Edit post",
		"User":          h.currentUser(c),
		"Groups":        groups,
		"Post":          post,
		"Edit":          true,
		"SelectedGroup": derefGroupID(post.GroupID),
	})
}

// PostEdit applies the edit and returns to the post page.
func (h *Handler) PostEdit(c *fiber.Ctx) error {
	h.userContext(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.NotFound(c)
	}

	post, err := h.posts.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:   h.sessionUserID(c),
		PostID:   uint(id),
		Text:     c.FormValue("text"),
		GroupID:  formGroupID(c),
		ImageURL: c.FormValue("image_url"),
	})
	if err != nil {
		var appErr *models.AppError
		if asAppError(err, &appErr) && appErr.Code == "UNAUTHORIZED" {
			return c.Redirect("/posts/"+c.Params("id"), fiber.StatusFound)
		}
		existing, getErr := h.posts.GetPost(c.Context(), uint(id))
		if getErr != nil {
			return h.NotFound(c)
		}
		return h.renderPostFormError(c, err, true, existing)
	}
	return c.Redirect("/posts/"+itoa(post.ID), fiber.StatusFound)
}

// AddComment attaches a comment and returns to the post page.
func (h *Handler) AddComment(c *fiber.Ctx) error {
	h.userContext(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.NotFound(c)
	}

	_, err = h.comments.AddComment(c.Context(), service.AddCommentInput{
		AuthorID: h.sessionUserID(c),
		PostID:   uint(id),
		Text:     c.FormValue("text"),
	})
	if err != nil {
		var appErr *models.AppError
		if asAppError(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return h.NotFound(c)
		}
		// An empty comment just bounces back to the post.
	}
	return c.Redirect("/posts/"+c.Params("id"), fiber.StatusFound)
}

// Feed renders posts from the authors the user follows.
func (h *Handler) Feed(c *fiber.Ctx) error {
	h.userContext(c)

	page, err := h.posts.FeedPage(c.Context(), h.sessionUserID(c), pageNumber(c))
	if err != nil {
		return err
	}
	return c.Render("follow", fiber.Map{
		"Title": "Your feed",
		"User":  h.currentUser(c),
		"Page":  page,
	})
}

// renderPostFormError redisplays the form with the validation message.
func (h *Handler) renderPostFormError(c *fiber.Ctx, err error, edit bool, post *models.Post) error {
	groups, gerr := h.groups.ListGroups(c.Context())
	if gerr != nil {
		return gerr
	}

	msg := "Could not save the post"
	var appErr *models.AppError
	if asAppError(err, &appErr) {
		msg = appErr.Message
	}

	title := "New post"
	if edit {
		title = "Edit post"
	}
	var selected uint
	if post != nil {
		selected = derefGroupID(post.GroupID)
	}
	return c.Status(fiber.StatusBadRequest).Render("post_form", fiber.Map{
		"Title":         title,
		"User":          h.currentUser(c),
		"Groups":        groups,
		"Post":          post,
		"Edit":          edit,
		"Error":         msg,
		"Text":          c.FormValue("text"),
		"SelectedGroup": selected,
	})
}

func derefGroupID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
