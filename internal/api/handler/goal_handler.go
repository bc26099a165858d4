package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// GoalHandler handles HTTP requests for goal operations.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

type createGoalRequest struct {
	Name          string  `json:"name"         validate:"required"`
	TargetAmount  float64 `json:"targetAmount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Category      string  `json:"category"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
}

// updateGoalRequest carries only the fields the client wants changed.
type updateGoalRequest struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
	Category      *string  `json:"category"`
	Icon          *string  `json:"icon"`
	Color         *string  `json:"color"`
	IsCompleted   *bool    `json:"isCompleted"`
	CompletedAt   *string  `json:"completedAt"`
	UpdatedAt     *string  `json:"updatedAt"`
}

func (h *GoalHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goals, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user.ID, domain.GoalDraft{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Category:      req.Category,
		Icon:          req.Icon,
		Color:         req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *GoalHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), domain.GoalPatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Category:      req.Category,
		Icon:          req.Icon,
		Color:         req.Color,
		IsCompleted:   req.IsCompleted,
		CompletedAt:   req.CompletedAt,
		UpdatedAt:     req.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *GoalHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Goal deleted successfully"})
}
