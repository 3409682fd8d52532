// models/user.go
package models

import (
	"time"
)

// Role names seeded at startup.
const (
	RoleParticipant = "Participant"
	RoleVolunteer   = "Volunteer"
)

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null;size:150" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	Age            int        `json:"age"`
	AbilityTypeID  uint       `gorm:"not null;index" json:"ability_type_id"`
	AbilityType    *AbilityType `gorm:"foreignKey:AbilityTypeID" json:"ability_type,omitempty"`
	OrganizationID uint       `gorm:"not null;index" json:"organization_id"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Contact        string     `gorm:"size:100" json:"contact"`
	RoleID         uint       `gorm:"not null;index" json:"role_id"`
	Role           *Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	IsDeleted      bool       `gorm:"default:false;index" json:"is_deleted"`
	Version        int        `gorm:"default:1" json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;size:50" json:"name"`
	Permissions string `gorm:"size:200" json:"permissions"`

	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}
