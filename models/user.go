package models

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
)

// User is the current session's actor. There is no multi-user registry;
// a single fixed record is seeded per session.
type User struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          Role    `json:"role"`
	WalletBalance float64 `json:"wallet_balance"` // only meaningful for role=user
}
