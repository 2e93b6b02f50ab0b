package model

import "time"

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User holds the role assignment for an authenticated principal.
type User struct {
	UID       string    `gorm:"primaryKey" json:"uid"`
	Email     string    `gorm:"index" json:"email"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
