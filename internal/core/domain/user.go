package domain

import (
	"errors"
	"time"
)

const (
	// StatusEnabled and StatusDisabled are the stored account states.
	StatusEnabled  = 1
	StatusDisabled = 2
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenRevoked = errors.New("token has been revoked")

// User models a system account. Username is unique and immutable after
// creation; DepartmentCodes holds the codes of the departments the user
// belongs to.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Realname        string    `json:"realname"`
	Email           string    `json:"email,omitempty"`
	Mobile          string    `json:"mobile,omitempty"`
	Status          int       `json:"-"`
	PasswordHash    string    `json:"-"`
	DepartmentCodes []string  `json:"departmentCodes"`
	Creator         string    `json:"creator,omitempty"`
	Modifier        string    `json:"modifier,omitempty"`
	CreatedAt       time.Time `json:"createdTime"`
	UpdatedAt       time.Time `json:"updatedTime"`
}

// Enabled reports whether the account may log in.
func (u *User) Enabled() bool {
	return u.Status == StatusEnabled
}
