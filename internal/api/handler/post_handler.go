package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/api/metrics"
	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// PostHandler handles the JSON API for posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/.
//
// @Summary      List posts, paginated
// @Tags         posts
// @Produce      json
// @Param        page            query     int  false  "Page number (1-based)"
// @Param        posts_per_page  query     int  false  "Page size"
// @Success      200             {object}  listPostsResponse
// @Failure      500             {object}  errorResponse
// @Router       /api/ [get]
func (h *PostHandler) List(c echo.Context) error {
	page, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{
		Page:         queryInt(c, "page"),
		PostsPerPage: queryInt(c, "posts_per_page"),
	})
	if err != nil {
		return err
	}

	posts := make([]postResponse, 0, len(page.Posts))
	for _, p := range page.Posts {
		posts = append(posts, toPostResponse(p))
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Posts:        posts,
		Page:         page.Page,
		PostsPerPage: page.PostsPerPage,
		NumPages:     page.NumPages,
	})
}

// Create handles POST /api/.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      200   {object}  flashResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/ [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:          req.Title,
		Text:           req.Text,
		ExtraAttribute: req.ExtraAttribute,
	}); err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, flashResponse{Kind: "success", Message: "Post successfully added"})
}

// Update handles PATCH /api/:id. All mutable fields are replaced at once;
// there are no partial updates.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Post id"
// @Param        body  body      updatePostRequest  true  "Post fields"
// @Success      200   {object}  flashResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.UpdatePost(c.Request().Context(), id, ports.UpdatePostInput{
		Title:          req.Title,
		Text:           req.Text,
		ExtraAttribute: req.ExtraAttribute,
	}); err != nil {
		return err
	}

	metrics.PostsUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, flashResponse{Kind: "success", Message: "Post successfully updated"})
}

// Delete handles DELETE /api/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  flashResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, flashResponse{Kind: "success", Message: "Post successfully deleted"})
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:             p.ID,
		Title:          p.Title,
		Text:           p.Text,
		ExtraAttribute: p.ExtraAttribute,
	}
}

// queryInt returns the named query parameter, or 0 when absent or malformed.
// The service applies the defaults.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return id, nil
}
