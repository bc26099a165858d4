package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// RecurringHandler handles HTTP requests for recurring-transaction rules.
type RecurringHandler struct {
	service ports.RecurringService
}

func NewRecurringHandler(service ports.RecurringService) *RecurringHandler {
	return &RecurringHandler{service: service}
}

type createRecurringRequest struct {
	Type        string  `json:"type"        validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount"      validate:"required"`
	CategoryID  string  `json:"categoryId"  validate:"required"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency"   validate:"required,oneof=daily weekly monthly yearly"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	IsActive    *bool   `json:"isActive"`
}

// updateRecurringRequest carries only the fields the client wants changed.
type updateRecurringRequest struct {
	Type          *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Amount        *float64 `json:"amount"`
	CategoryID    *string  `json:"categoryId"`
	Description   *string  `json:"description"`
	Frequency     *string  `json:"frequency" validate:"omitempty,oneof=daily weekly monthly yearly"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	LastGenerated *string  `json:"lastGenerated"`
	IsActive      *bool    `json:"isActive"`
	UpdatedAt     *string  `json:"updatedAt"`
}

func (h *RecurringHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	rules, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rules)
}

func (h *RecurringHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createRecurringRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user.ID, domain.RecurringDraft{
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *RecurringHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), domain.RecurringPatch{
		Type:          req.Type,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Frequency:     req.Frequency,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		LastGenerated: req.LastGenerated,
		IsActive:      req.IsActive,
		UpdatedAt:     req.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *RecurringHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Recurring transaction deleted successfully"})
}
