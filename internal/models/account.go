package models

import (
	"strings"

	"github.com/google/uuid"
)

// Account is a registered user identity. Accounts are never deleted.
//
// Password is stored and compared in plain text. That is the literal contract
// of this demo-grade system; anything production-shaped must replace it with
// a hash before shipping.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AvatarToken string `json:"avatar"`
	JoinDate    string `json:"joinDate"`

	// WeeklyEntryCount is, despite the name, a lifetime counter: incremented
	// on every successful entry add, never decremented, never windowed.
	WeeklyEntryCount int `json:"weeklyEntryCount"`
}

// AccountDraft carries the user-supplied fields of a registration.
type AccountDraft struct {
	Username string
	Email    string
	Password string
}

// NewAccount builds a complete Account from a draft: fresh id, today's join
// date, default avatar, zero entry counter. Uniqueness checks against the
// existing collection belong to the coordinator.
func NewAccount(d AccountDraft) *Account {
	return &Account{
		ID:          uuid.NewString(),
		Username:    strings.TrimSpace(d.Username),
		Email:       strings.TrimSpace(d.Email),
		Password:    d.Password,
		AvatarToken: DefaultEmoji,
		JoinDate:    Today(),
	}
}
