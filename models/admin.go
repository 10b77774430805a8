package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin represents contest staff accounts
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password     string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role         string    `gorm:"type:varchar(20);not null;default:admin" json:"role"`
	IsSuperAdmin bool      `gorm:"not null;default:false" json:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeSave is a GORM hook that keeps IsSuperAdmin consistent with Role
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	a.IsSuperAdmin = a.Role == RoleSuperAdmin
	return nil
}

// IsValidRole reports whether role is one of the known admin roles
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
