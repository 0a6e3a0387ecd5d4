package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	MobileNumber string `gorm:"type:varchar(20)"`
	Password     string `gorm:"type:varchar(255)"` // bcrypt hash; empty for OTP-only customers
	Role         string `gorm:"type:varchar(20);not null;default:'customer'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
