// models/organization.go
package models

import (
	"time"
)

// Organization is a partner organization that registers participants.
type Organization struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:150"`
	Contact     string    `json:"contact" gorm:"size:150"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false;index"`
	Version     int       `json:"version" gorm:"default:1"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date,omitempty"`

	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:OrganizationID"`
}

// AbilityType classifies participants and games by disability category.
type AbilityType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false;index"`
	Version     int    `json:"version" gorm:"default:1"`

	Categories []ActivityCategory `json:"categories,omitempty" gorm:"foreignKey:AbilityTypeID"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (AbilityType) TableName() string {
	return "ability_types"
}
