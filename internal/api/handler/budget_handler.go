package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// BudgetHandler handles HTTP requests for budget operations.
type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

type createBudgetRequest struct {
	CategoryID     string  `json:"categoryId" validate:"required"`
	Amount         float64 `json:"amount"     validate:"required"`
	Period         string  `json:"period"     validate:"omitempty,oneof=monthly yearly"`
	StartDate      string  `json:"startDate"`
	AlertThreshold *int    `json:"alertThreshold"`
}

// updateBudgetRequest carries only the fields the client wants changed;
// omitted (null) fields keep their stored values.
type updateBudgetRequest struct {
	CategoryID     *string  `json:"categoryId"`
	Amount         *float64 `json:"amount"`
	Period         *string  `json:"period" validate:"omitempty,oneof=monthly yearly"`
	StartDate      *string  `json:"startDate"`
	AlertThreshold *int     `json:"alertThreshold"`
	UpdatedAt      *string  `json:"updatedAt"`
}

func (h *BudgetHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	budgets, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user.ID, domain.BudgetDraft{
		CategoryID:     req.CategoryID,
		Amount:         req.Amount,
		Period:         req.Period,
		StartDate:      req.StartDate,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *BudgetHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), domain.BudgetPatch{
		CategoryID:     req.CategoryID,
		Amount:         req.Amount,
		Period:         req.Period,
		StartDate:      req.StartDate,
		AlertThreshold: req.AlertThreshold,
		UpdatedAt:      req.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *BudgetHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Budget deleted successfully"})
}
