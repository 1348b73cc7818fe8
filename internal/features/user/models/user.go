package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single persistent entity: identity, verification state and
// the financial ledger.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string             `bson:"email" json:"email"`
	OTP      string             `bson:"otp,omitempty" json:"otp,omitempty"`
	Verified bool               `bson:"verified" json:"verified"`

	Balance       float64  `bson:"balance" json:"balance"`
	TotalIncome   float64  `bson:"totalIncome" json:"totalIncome"`
	ReferredUsers []string `bson:"referredUsers,omitempty" json:"referredUsers,omitempty"`

	PurchasedPlans  []PurchasedPlan `bson:"purchasedPlans,omitempty" json:"purchasedPlans,omitempty"`
	WithdrawHistory []WithdrawEntry `bson:"withdrawHistory,omitempty" json:"withdrawHistory,omitempty"`
	DepositHistory  []DepositEntry  `bson:"depositHistory,omitempty" json:"depositHistory,omitempty"`
}

type PurchasedPlan struct {
	PlanName     string    `bson:"planName" json:"planName"`
	Amount       float64   `bson:"amount" json:"amount"`
	ProfitPerDay float64   `bson:"profitPerDay" json:"profitPerDay"`
	PurchaseDate time.Time `bson:"purchaseDate" json:"purchaseDate"`
}

type WithdrawEntry struct {
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
	Status string    `bson:"status" json:"status"`
}

type DepositEntry struct {
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
	Method string    `bson:"method" json:"method"`
}

// UserResponse is the public view of a user. The outstanding OTP never
// leaves the service.
type UserResponse struct {
	ID       primitive.ObjectID `json:"id,omitempty"`
	Name     string             `json:"name"`
	Phone    string             `json:"phone,omitempty"`
	Email    string             `json:"email"`
	Verified bool               `json:"verified"`

	Balance       float64  `json:"balance"`
	TotalIncome   float64  `json:"totalIncome"`
	ReferredUsers []string `json:"referredUsers,omitempty"`

	PurchasedPlans  []PurchasedPlan `json:"purchasedPlans,omitempty"`
	WithdrawHistory []WithdrawEntry `json:"withdrawHistory,omitempty"`
	DepositHistory  []DepositEntry  `json:"depositHistory,omitempty"`
}

// ToResponse strips the OTP from a user record.
func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		Verified:        u.Verified,
		Balance:         u.Balance,
		TotalIncome:     u.TotalIncome,
		ReferredUsers:   u.ReferredUsers,
		PurchasedPlans:  u.PurchasedPlans,
		WithdrawHistory: u.WithdrawHistory,
		DepositHistory:  u.DepositHistory,
	}
}
