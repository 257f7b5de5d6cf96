package handler

import "time"

// --- Request types ---

type createDepartmentRequest struct {
	Code string `json:"code" validate:"required,min=1,max=32"`
	Name string `json:"name" validate:"required,min=2,max=32"`
	// ParentCode must not equal Code: the self-parent fast path is checked
	// at bind time, the full ancestor walk happens in the service.
	ParentCode  string `json:"parentCode,omitempty"  validate:"omitempty,nefield=Code"`
	Description string `json:"description,omitempty" validate:"max=256"`
}

type updateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=32"`
	ParentCode  string `json:"parentCode,omitempty"`
	Description string `json:"description,omitempty" validate:"max=256"`
}

// --- Response types ---

type departmentResponse struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	ParentCode  string               `json:"parentCode,omitempty"`
	Description string               `json:"description,omitempty"`
	CreatedTime time.Time            `json:"createdTime"`
	UpdatedTime time.Time            `json:"updatedTime"`
	Children    []departmentResponse `json:"children,omitempty"`
}

// departmentMemberResponse is the per-user row for the members listing.
type departmentMemberResponse struct {
	Username string `json:"username"`
	Realname string `json:"realname"`
	Email    string `json:"email,omitempty"`
	Enabled  bool   `json:"enabled"`
}
