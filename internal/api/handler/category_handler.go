package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name  string `json:"name"  validate:"required"`
	Icon  string `json:"icon"  validate:"required"`
	Color string `json:"color" validate:"required"`
	Type  string `json:"type"  validate:"required,oneof=income expense"`
}

// List returns built-in defaults followed by the caller's custom categories.
//
// @Summary      List categories (defaults + custom)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	categories, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user.ID, domain.CategoryDraft{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Delete removes a custom category. Built-in default ids always fail.
func (h *CategoryHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Category deleted successfully"})
}
