package domain

// Category classifies transactions and budgets. Two flavours share the type:
// built-in defaults with fixed string ids (never persisted, IsCustom false)
// and user-created custom categories with database-generated ids.
type Category struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	UserID   string `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Icon     string `json:"icon" bson:"icon"`
	Color    string `json:"color" bson:"color"`
	Type     string `json:"type" bson:"type"`
	IsCustom bool   `json:"isCustom" bson:"isCustom"`
}

// CategoryDraft carries the fields a client may set when creating a custom
// category. IsCustom is always stamped true by the server.
type CategoryDraft struct {
	Name  string
	Icon  string
	Color string
	Type  string
}

// DefaultExpenseCategories are the built-in expense categories, listed ahead
// of any custom categories. They cannot be deleted.
var DefaultExpenseCategories = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "🍔", Color: "#f59e0b", Type: TypeExpense},
	{ID: "transport", Name: "Transportation", Icon: "🚗", Color: "#3b82f6", Type: TypeExpense},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#ec4899", Type: TypeExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#8b5cf6", Type: TypeExpense},
	{ID: "bills", Name: "Bills & Utilities", Icon: "💡", Color: "#ef4444", Type: TypeExpense},
	{ID: "health", Name: "Healthcare", Icon: "⚕️", Color: "#10b981", Type: TypeExpense},
	{ID: "education", Name: "Education", Icon: "📚", Color: "#6366f1", Type: TypeExpense},
	{ID: "other", Name: "Other", Icon: "📝", Color: "#64748b", Type: TypeExpense},
}

// DefaultIncomeCategories are the built-in income categories.
var DefaultIncomeCategories = []Category{
	{ID: "salary", Name: "Salary", Icon: "💼", Color: "#10b981", Type: TypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "💻", Color: "#3b82f6", Type: TypeIncome},
	{ID: "business", Name: "Business", Icon: "🏢", Color: "#8b5cf6", Type: TypeIncome},
	{ID: "investment", Name: "Investment", Icon: "📈", Color: "#f59e0b", Type: TypeIncome},
	{ID: "rental", Name: "Rental Income", Icon: "🏠", Color: "#ec4899", Type: TypeIncome},
	{ID: "gift", Name: "Gift/Bonus", Icon: "🎁", Color: "#ef4444", Type: TypeIncome},
	{ID: "other_income", Name: "Other Income", Icon: "💵", Color: "#64748b", Type: TypeIncome},
}
