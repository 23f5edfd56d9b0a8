package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

const flashCookieName = "_flash"

// flashMessage is a one-shot notice carried from a form submission to the
// next list-page render via cookie.
type flashMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WebHandler serves the HTML pages. The form endpoints mutate through the same
// PostService as the JSON API and redirect back to the list page with a flash.
type WebHandler struct {
	service ports.PostService
}

func NewWebHandler(service ports.PostService) *WebHandler {
	return &WebHandler{service: service}
}

// ListPage handles GET /.
func (h *WebHandler) ListPage(c echo.Context) error {
	page, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{
		Page:         queryInt(c, "page"),
		PostsPerPage: queryInt(c, "posts_per_page"),
	})
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"Posts":        page.Posts,
		"Page":         page.Page,
		"PostsPerPage": page.PostsPerPage,
		"NumPages":     page.NumPages,
		"PrevPage":     page.Page - 1,
		"NextPage":     page.Page + 1,
		"Flash":        popFlash(c),
	})
}

// NewPage handles GET /new.
func (h *WebHandler) NewPage(c echo.Context) error {
	return c.Render(http.StatusOK, "new.html", nil)
}

// EditPage handles GET /:id.
func (h *WebHandler) EditPage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.GetPost(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "edit.html", map[string]interface{}{
		"Post": post,
	})
}

// CreateForm handles POST /. The form has no extra_attribute field, so the
// column default applies.
func (h *WebHandler) CreateForm(c echo.Context) error {
	title := c.FormValue("title")
	text := c.FormValue("text")
	if title == "" || text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and text are required")
	}

	if _, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title: title,
		Text:  text,
	}); err != nil {
		return err
	}

	setFlash(c, "success", "Post successfully added")
	return c.Redirect(http.StatusSeeOther, "/")
}

// UpdateForm handles POST /:id.
func (h *WebHandler) UpdateForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	text := c.FormValue("text")
	if title == "" || text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and text are required")
	}

	extra := domain.DefaultExtraAttribute
	if v := c.FormValue("extra_attribute"); v != "" {
		extra, err = strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "extra_attribute must be an integer")
		}
	}

	if _, err := h.service.UpdatePost(c.Request().Context(), id, ports.UpdatePostInput{
		Title:          title,
		Text:           text,
		ExtraAttribute: extra,
	}); err != nil {
		return err
	}

	setFlash(c, "success", "Post successfully updated")
	return c.Redirect(http.StatusSeeOther, "/")
}

// DeleteForm handles POST /delete/:id.
func (h *WebHandler) DeleteForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), id); err != nil {
		return err
	}

	setFlash(c, "success", "Post successfully deleted")
	return c.Redirect(http.StatusSeeOther, "/")
}

// setFlash stores the message as base64-encoded JSON; cookie values cannot
// carry raw JSON punctuation.
func setFlash(c echo.Context, kind, message string) {
	payload, err := json.Marshal(flashMessage{Kind: kind, Message: message})
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the flash cookie. Returns nil when absent or
// undecodable.
func popFlash(c echo.Context) *flashMessage {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msg flashMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil
	}
	return &msg
}
