package handler

import "time"

// --- Request types ---

type createUserRequest struct {
	Username        string   `json:"username"        validate:"required,min=4,max=20"`
	Password        string   `json:"password"        validate:"required,min=6,max=20"`
	Realname        string   `json:"realname"        validate:"required"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	Mobile          string   `json:"mobile,omitempty"`
	Enabled         bool     `json:"enabled"`
	DepartmentCodes []string `json:"departmentCodes,omitempty"`
}

type updateUserRequest struct {
	// Password is optional on update: empty keeps the current credential.
	Password        string   `json:"password,omitempty" validate:"omitempty,min=6,max=20"`
	Realname        string   `json:"realname"           validate:"required"`
	Email           string   `json:"email,omitempty"    validate:"omitempty,email"`
	Mobile          string   `json:"mobile,omitempty"`
	Enabled         bool     `json:"enabled"`
	DepartmentCodes []string `json:"departmentCodes,omitempty"`
}

type userStatusRequest struct {
	Enabled bool `json:"enabled"`
}

// --- Response types ---
// Response-only types owned by the transport layer, so the JSON contract is
// not coupled to internal domain changes.

type userResponse struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Realname        string    `json:"realname"`
	Email           string    `json:"email,omitempty"`
	Mobile          string    `json:"mobile,omitempty"`
	Enabled         bool      `json:"enabled"`
	DepartmentCodes []string  `json:"departmentCodes"`
	CreatedTime     time.Time `json:"createdTime"`
	UpdatedTime     time.Time `json:"updatedTime"`
}

type resetPasswordData struct {
	Password string `json:"password"`
}
