package domain

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// BankInfo holds the bank account details collected during onboarding.
type BankInfo struct {
	BankName      string `json:"bankName" bson:"bank_name"`
	AccountNumber string `json:"accountNumber" bson:"account_number"`
	IFSCCode      string `json:"ifscCode" bson:"ifsc_code"`
	BranchName    string `json:"branchName" bson:"branch_name"`
}

// CardInfo describes a debit or credit card on file. Only the last four
// digits are ever stored.
type CardInfo struct {
	LastFourDigits string  `json:"lastFourDigits" bson:"last_four_digits"`
	CardHolder     string  `json:"cardHolder" bson:"card_holder"`
	Expiry         string  `json:"expiry" bson:"expiry"`
	CreditLimit    float64 `json:"creditLimit,omitempty" bson:"credit_limit,omitempty"`
}

// OnboardingProfile is the optional profile captured when a user completes
// the onboarding flow.
type OnboardingProfile struct {
	EmployeeID  string    `json:"employeeId" bson:"employee_id"`
	Department  string    `json:"department" bson:"department"`
	Designation string    `json:"designation" bson:"designation"`
	BankInfo    BankInfo  `json:"bankInfo" bson:"bank_info"`
	DebitCard   CardInfo  `json:"debitCard" bson:"debit_card"`
	CreditCard  CardInfo  `json:"creditCard" bson:"credit_card"`
}

// User models an authenticated account. The email is the login key and is
// unique across all users; the password is stored only as a bcrypt hash.
type User struct {
	ID           string             `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	IsOnboarded  bool               `json:"is_onboarded" bson:"is_onboarded"`
	Onboarding   *OnboardingProfile `json:"onboarding,omitempty" bson:"onboarding,omitempty"`
	Theme        string             `json:"theme,omitempty" bson:"theme,omitempty"`
}
