package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gia/internal/delivery/http/middleware"
	"gia/internal/delivery/http/response"
	"gia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for blog and magazine handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

func pageParams(c echo.Context) (limit, offset int) {
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		offset = v
	}

	return limit, offset
}

// ListPosts returns published blog posts.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	limit, offset := pageParams(c)

	posts, err := h.uc.ListPosts(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Blog posts retrieved successfully")
}

// GetPost returns a single published blog post.
func (h *ContentHandler) GetPost(c echo.Context) error {
	post, err := h.uc.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post retrieved successfully")
}

// CreatePost creates a blog post authored by the caller.
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var input *usecase.BlogPostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), middleware.Caller(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Blog post created successfully")
}

// ListMagazines returns magazine issues.
func (h *ContentHandler) ListMagazines(c echo.Context) error {
	limit, offset := pageParams(c)

	magazines, err := h.uc.ListMagazines(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, magazines, "Magazines retrieved successfully")
}

// PublishMagazine creates a magazine issue. Routing restricts this to the
// superuser.
func (h *ContentHandler) PublishMagazine(c echo.Context) error {
	var input *usecase.MagazineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid magazine input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	magazine, err := h.uc.PublishMagazine(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, magazine, "Magazine published successfully")
}
