// models/participant.go
package models

import (
	"time"
)

// Participant is an athlete registered for the event.
type Participant struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"not null;size:150"`
	Age              int        `json:"age" gorm:"not null"`
	Gender           string     `json:"gender" gorm:"size:20"`
	BloodGroup       string     `json:"blood_group" gorm:"size:10"`
	OrganizationID   uint       `json:"organization_id" gorm:"not null;index"`
	Organization     *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	AbilityTypeID    uint       `json:"ability_type_id" gorm:"not null;index"`
	AbilityType      *AbilityType `json:"ability_type,omitempty" gorm:"foreignKey:AbilityTypeID"`
	Contact          string     `json:"contact" gorm:"size:100"`
	EmergencyContact string     `json:"emergency_contact" gorm:"size:100"`
	Address          string     `json:"address" gorm:"type:text"`
	MedicalNotes     string     `json:"medical_notes" gorm:"type:text"`
	RegistrationRef  string     `json:"registration_ref" gorm:"size:36;uniqueIndex"`
	IsDeleted        bool       `json:"is_deleted" gorm:"default:false;index"`
	Version          int        `json:"version" gorm:"default:1"`
	CreatedDate      time.Time  `json:"created_date"`
	UpdatedDate      *time.Time `json:"updated_date,omitempty"`

	Registrations []ParticipantGame `json:"registrations,omitempty" gorm:"foreignKey:ParticipantID"`
}

// Volunteer helps run activities and can lead teams.
type Volunteer struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;size:150"`
	Contact     string     `json:"contact" gorm:"size:100"`
	WhatsAppNo  string     `json:"whatsapp_no" gorm:"size:30"`
	Email       string     `json:"email" gorm:"size:150"`
	Address     string     `json:"address" gorm:"type:text"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false;index"`
	Version     int        `json:"version" gorm:"default:1"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date,omitempty"`
}

func (Participant) TableName() string {
	return "participants"
}

func (Volunteer) TableName() string {
	return "volunteers"
}
