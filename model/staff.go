package model

import "time"

// Staff is a librarian account used to guard catalog and member management.
type Staff struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterStaffReq represents staff registration payload
// swagger:model RegisterStaffReq
type RegisterStaffReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginStaffReq represents staff login payload
// swagger:model LoginStaffReq
type LoginStaffReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
