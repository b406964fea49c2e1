// Package web serves the server-rendered HTML surface: timelines,
// profiles, post forms, and cookie-session authentication.
package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine builds the HTML template engine from the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("until", func(n int) []int {
		r := make([]int, n)
		for i := range r {
			r[i] = i + 1
		}
		return r
	})
	return engine
}

// Handler carries the web surface's dependencies.
type Handler struct {
	cfg      *config.Config
	store    *session.Store
	users    *service.UserService
	posts    *service.PostService
	groups   *service.GroupService
	comments *service.CommentService
	follows  *service.FollowService
}

// NewHandler wires the web surface against the shared service layer.
func NewHandler(
	cfg *config.Config,
	users *service.UserService,
	posts *service.PostService,
	groups *service.GroupService,
	comments *service.CommentService,
	follows *service.FollowService,
) *Handler {
	store := session.New(session.Config{
		KeyLookup:      "cookie:inkwell_session",
		Expiration:     14 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &Handler{
		cfg:      cfg,
		store:    store,
		users:    users,
		posts:    posts,
		groups:   groups,
		comments: comments,
		follows:  follows,
	}
}

// RegisterRoutes mounts all web routes on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	// The index timeline is served from the whole-page cache; fresh
	// posts can lag behind by up to the TTL.
	app.Get("/", cache.PageCache(h.cfg.PageCacheTTL), h.Index)
	app.Get("/group/:slug", h.GroupPosts)
	app.Get("/profile/:username", h.Profile)
	app.Get("/posts/:id", h.PostDetail)

	app.Get("/auth/signup", h.SignupForm)
	app.Post("/auth/signup", h.Signup)
	app.Get("/auth/login", h.LoginForm)
	app.Post("/auth/login", h.Login)
	app.Get("/auth/logout", h.Logout)

	app.Get("/create", h.LoginRequired, h.PostCreateForm)
	app.Post("/create", h.LoginRequired, h.PostCreate)
	app.Get("/posts/:id/edit", h.LoginRequired, h.PostEditForm)
	app.Post("/posts/:id/edit", h.LoginRequired, h.PostEdit)
	app.Post("/posts/:id/comment", h.LoginRequired, h.AddComment)

	app.Get("/follow", h.LoginRequired, h.Feed)
	app.Get("/profile/:username/follow", h.LoginRequired, h.ProfileFollow)
	app.Get("/profile/:username/unfollow", h.LoginRequired, h.ProfileUnfollow)

	// Themed 404 for everything unmatched.
	app.Use(h.NotFound)
}

// sessionUserID reads the logged-in user from the cookie session. A
// zero return means anonymous.
func (h *Handler) sessionUserID(c *fiber.Ctx) uint {
	sess, err := h.store.Get(c)
	if err != nil {
		return 0
	}
	if id, ok := sess.Get("userID").(uint); ok {
		return id
	}
	return 0
}

// currentUser resolves the session to a full user record.
func (h *Handler) currentUser(c *fiber.Ctx) *models.User {
	id := h.sessionUserID(c)
	if id == 0 {
		return nil
	}
	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return nil
	}
	return user
}

// LoginRequired redirects anonymous visitors to the login form,
// remembering where they were headed.
func (h *Handler) LoginRequired(c *fiber.Ctx) error {
	if h.sessionUserID(c) == 0 {
		return c.Redirect("/auth/login?next="+c.Path(), fiber.StatusFound)
	}
	return c.Next()
}

// login stores the user in the session and syncs the logging context.
func (h *Handler) login(c *fiber.Ctx, userID uint) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("userID", userID)
	return sess.Save()
}

func (h *Handler) logout(c *fiber.Ctx) {
	if sess, err := h.store.Get(c); err == nil {
		_ = sess.Destroy()
	}
}

// NotFound renders the themed 404 page.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Title": "Page not found",
		"User":  h.currentUser(c),
		"Path":  c.Path(),
	})
}

// pageNumber reads the ?page= query parameter, defaulting to 1.
func pageNumber(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// formGroupID parses the optional group select value from a post form.
func formGroupID(c *fiber.Ctx) *uint {
	raw := c.FormValue("group")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	groupID := uint(id)
	return &groupID
}

// asAppError unwraps a service error into its typed form.
func asAppError(err error, target **models.AppError) bool {
	return errors.As(err, target)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// userContext returns a request context carrying the session user for
// structured logs.
func (h *Handler) userContext(c *fiber.Ctx) {
	if id := h.sessionUserID(c); id != 0 {
		c.Locals("userID", id)
		c.SetUserContext(middleware.WithUserID(c.UserContext(), id))
	}
}
