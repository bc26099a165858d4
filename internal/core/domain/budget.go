package domain

const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// DefaultAlertThreshold is the percentage of a budget at which the client
// shows a warning.
const DefaultAlertThreshold = 80

// Budget caps spending for a category (or "overall") over a period.
type Budget struct {
	ID             string  `json:"id" bson:"_id,omitempty"`
	UserID         string  `json:"user_id" bson:"user_id"`
	CategoryID     string  `json:"categoryId" bson:"categoryId"`
	Amount         float64 `json:"amount" bson:"amount"`
	Period         string  `json:"period" bson:"period"`
	StartDate      string  `json:"startDate" bson:"startDate,omitempty"`
	AlertThreshold int     `json:"alertThreshold" bson:"alertThreshold"`
	CreatedAt      string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// BudgetDraft carries the fields a client may set when creating a budget.
type BudgetDraft struct {
	CategoryID     string
	Amount         float64
	Period         string
	StartDate      string
	AlertThreshold *int
}

// BudgetPatch is a partial update: only non-nil fields overwrite stored
// values.
type BudgetPatch struct {
	CategoryID     *string
	Amount         *float64
	Period         *string
	StartDate      *string
	AlertThreshold *int
	UpdatedAt      *string
}
