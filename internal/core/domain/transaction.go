package domain

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DefaultPaymentMode is applied when a transaction is created without one.
const DefaultPaymentMode = "UPI"

// Transaction is a single income or expense entry. Dates are kept as the
// client-supplied strings (e.g. "2023-10-27"); the server never parses them.
type Transaction struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	UserID      string  `json:"user_id" bson:"user_id"`
	Amount      float64 `json:"amount" bson:"amount"`
	Description string  `json:"description" bson:"description,omitempty"`
	CategoryID  string  `json:"categoryId" bson:"categoryId"`
	Date        string  `json:"date" bson:"date"`
	Type        string  `json:"type" bson:"type"`
	PaymentMode string  `json:"paymentMode" bson:"paymentMode,omitempty"`
	SyncKey     string  `json:"-" bson:"sync_key,omitempty"`
}

// TransactionDraft carries the client-editable fields of a transaction.
// Create and update both take the full draft: transaction updates replace
// every editable field, unlike the merge semantics of the other resources.
type TransactionDraft struct {
	Amount      float64
	Description string
	CategoryID  string
	Date        string
	Type        string
	PaymentMode string
}
