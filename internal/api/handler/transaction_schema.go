package handler

import "github.com/lokeshec23/Track-Me/internal/core/domain"

// transactionRequest is used for both create and update: a transaction
// update replaces every editable field rather than merging.
type transactionRequest struct {
	Amount      float64 `json:"amount"      validate:"required"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"  validate:"required"`
	Date        string  `json:"date"        validate:"required"`
	Type        string  `json:"type"        validate:"required,oneof=income expense"`
	PaymentMode string  `json:"paymentMode"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type syncResponse struct {
	Message string   `json:"message"`
	IDs     []string `json:"ids"`
}

func (r transactionRequest) toDraft() domain.TransactionDraft {
	return domain.TransactionDraft{
		Amount:      r.Amount,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Date:        r.Date,
		Type:        r.Type,
		PaymentMode: r.PaymentMode,
	}
}
