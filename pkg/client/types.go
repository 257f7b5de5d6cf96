package client

import "time"

// User is a system account as exposed by the API.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Realname        string    `json:"realname"`
	Email           string    `json:"email,omitempty"`
	Mobile          string    `json:"mobile,omitempty"`
	Enabled         bool      `json:"enabled"`
	DepartmentCodes []string  `json:"departmentCodes,omitempty"`
	CreatedTime     time.Time `json:"createdTime"`
	UpdatedTime     time.Time `json:"updatedTime"`
}

// Department is an organizational unit. Children is populated only by the
// tree endpoint.
type Department struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	ParentCode  string       `json:"parentCode,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedTime time.Time    `json:"createdTime"`
	UpdatedTime time.Time    `json:"updatedTime"`
	Children    []Department `json:"children,omitempty"`
}

// DepartmentMember is the slim user projection returned when listing the
// accounts of a department.
type DepartmentMember struct {
	Username string `json:"username"`
	Realname string `json:"realname"`
	Email    string `json:"email,omitempty"`
	Enabled  bool   `json:"enabled"`
}

// DashboardStats are the headline counts for the dashboard.
type DashboardStats struct {
	UserCount       int64 `json:"userCount"`
	DepartmentCount int64 `json:"departmentCount"`
	ActiveUserCount int64 `json:"activeUserCount"`
}

// CreateUserInput is the payload for creating an account.
type CreateUserInput struct {
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	Realname        string   `json:"realname"`
	Email           string   `json:"email,omitempty"`
	Mobile          string   `json:"mobile,omitempty"`
	Enabled         bool     `json:"enabled"`
	DepartmentCodes []string `json:"departmentCodes,omitempty"`
}

// UpdateUserInput is the payload for a full edit of an account. An empty
// Password keeps the current credential.
type UpdateUserInput struct {
	Password        string   `json:"password,omitempty"`
	Realname        string   `json:"realname"`
	Email           string   `json:"email,omitempty"`
	Mobile          string   `json:"mobile,omitempty"`
	Enabled         bool     `json:"enabled"`
	DepartmentCodes []string `json:"departmentCodes,omitempty"`
}

// CreateDepartmentInput is the payload for creating a department.
type CreateDepartmentInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ParentCode  string `json:"parentCode,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateDepartmentInput is the payload for editing a department. Code is
// immutable and therefore absent.
type UpdateDepartmentInput struct {
	Name        string `json:"name"`
	ParentCode  string `json:"parentCode,omitempty"`
	Description string `json:"description,omitempty"`
}
