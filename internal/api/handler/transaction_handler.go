package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List returns all transactions owned by the caller.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /transactions/ [get]
func (h *TransactionHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	transactions, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// Create adds a transaction owned by the caller. Any client-supplied owner
// field is ignored.
//
// @Summary      Add a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transactionRequest  true  "Transaction details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /transactions/ [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user.ID, req.toDraft())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces every editable field of the transaction.
func (h *TransactionHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), req.toDraft())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the transaction permanently.
func (h *TransactionHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Transaction deleted successfully"})
}

// Sync inserts a batch of locally captured transactions. Items are processed
// independently; partial success is not rolled back.
//
// @Summary      Sync local transactions
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replay guard for retried batches"
// @Param        body             body      []transactionRequest  true   "Transactions to sync"
// @Success      200              {object}  syncResponse
// @Failure      400              {object}  map[string]string
// @Router       /transactions/sync [post]
func (h *TransactionHandler) Sync(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var reqs []transactionRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	drafts := make([]domain.TransactionDraft, 0, len(reqs))
	for _, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		drafts = append(drafts, req.toDraft())
	}

	result, err := h.service.Sync(c.Request().Context(), user.ID, drafts, c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncResponse{
		Message: fmt.Sprintf("Synced %d transactions", len(result.IDs)),
		IDs:     result.IDs,
	})
}
