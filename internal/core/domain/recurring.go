package domain

// Frequencies accepted for recurring rules.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurringRule describes a transaction that repeats on a schedule.
// LastGenerated is stored as bookkeeping only; no scheduler materialises
// recurring rules into transactions.
type RecurringRule struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	UserID        string  `json:"user_id" bson:"user_id"`
	Type          string  `json:"type" bson:"type"`
	Amount        float64 `json:"amount" bson:"amount"`
	CategoryID    string  `json:"categoryId" bson:"categoryId"`
	Description   string  `json:"description" bson:"description,omitempty"`
	Frequency     string  `json:"frequency" bson:"frequency"`
	StartDate     string  `json:"startDate" bson:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty" bson:"endDate,omitempty"`
	LastGenerated string  `json:"lastGenerated,omitempty" bson:"lastGenerated,omitempty"`
	IsActive      bool    `json:"isActive" bson:"isActive"`
	CreatedAt     string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// RecurringDraft carries the fields a client may set when creating a rule.
type RecurringDraft struct {
	Type        string
	Amount      float64
	CategoryID  string
	Description string
	Frequency   string
	StartDate   string
	EndDate     string
	IsActive    *bool
}

// RecurringPatch is a partial update: only non-nil fields overwrite stored
// values.
type RecurringPatch struct {
	Type          *string
	Amount        *float64
	CategoryID    *string
	Description   *string
	Frequency     *string
	StartDate     *string
	EndDate       *string
	LastGenerated *string
	IsActive      *bool
	UpdatedAt     *string
}
