package handler

import "github.com/lokeshec23/Track-Me/internal/core/domain"

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	IsOnboarded bool   `json:"is_onboarded"`
	Theme       string `json:"theme"`
}

type bankInfoRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BranchName    string `json:"branchName"`
}

type cardInfoRequest struct {
	LastFourDigits string  `json:"lastFourDigits"`
	CardHolder     string  `json:"cardHolder"`
	Expiry         string  `json:"expiry"`
	CreditLimit    float64 `json:"creditLimit"`
}

type onboardingRequest struct {
	EmployeeID  string          `json:"employeeId"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	BankInfo    bankInfoRequest `json:"bankInfo"`
	DebitCard   cardInfoRequest `json:"debitCard"`
	CreditCard  cardInfoRequest `json:"creditCard"`
}

type onboardingResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Message string `json:"message"`
	Theme   string `json:"theme"`
}

func (r onboardingRequest) toProfile() *domain.OnboardingProfile {
	return &domain.OnboardingProfile{
		EmployeeID:  r.EmployeeID,
		Department:  r.Department,
		Designation: r.Designation,
		BankInfo: domain.BankInfo{
			BankName:      r.BankInfo.BankName,
			AccountNumber: r.BankInfo.AccountNumber,
			IFSCCode:      r.BankInfo.IFSCCode,
			BranchName:    r.BankInfo.BranchName,
		},
		DebitCard: domain.CardInfo{
			LastFourDigits: r.DebitCard.LastFourDigits,
			CardHolder:     r.DebitCard.CardHolder,
			Expiry:         r.DebitCard.Expiry,
		},
		CreditCard: domain.CardInfo{
			LastFourDigits: r.CreditCard.LastFourDigits,
			CardHolder:     r.CreditCard.CardHolder,
			Expiry:         r.CreditCard.Expiry,
			CreditLimit:    r.CreditCard.CreditLimit,
		},
	}
}
