package domain

// Defaults applied to goals created without the optional cosmetic fields.
const (
	DefaultGoalCategory = "other"
	DefaultGoalIcon     = "🎯"
	DefaultGoalColor    = "#6366f1"
)

// Goal is a savings target the user works towards.
type Goal struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	UserID        string  `json:"user_id" bson:"user_id"`
	Name          string  `json:"name" bson:"name"`
	TargetAmount  float64 `json:"targetAmount" bson:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount" bson:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Category      string  `json:"category" bson:"category"`
	Icon          string  `json:"icon" bson:"icon"`
	Color         string  `json:"color" bson:"color"`
	IsCompleted   bool    `json:"isCompleted" bson:"isCompleted"`
	CreatedAt     string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	CompletedAt   string  `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// GoalDraft carries the fields a client may set when creating a goal.
type GoalDraft struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      string
	Category      string
	Icon          string
	Color         string
}

// GoalPatch is a partial update: only non-nil fields overwrite stored values.
type GoalPatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *string
	Category      *string
	Icon          *string
	Color         *string
	IsCompleted   *bool
	CompletedAt   *string
	UpdatedAt     *string
}
