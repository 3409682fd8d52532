// models/tournament.go
package models

import (
	"time"
)

// Tournament groups activities under a named event with a date range.
type Tournament struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;size:150"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date" gorm:"not null"`
	EndDate     time.Time  `json:"end_date" gorm:"not null"`
	Location    string     `json:"location" gorm:"size:200"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false;index"`
	Version     int        `json:"version" gorm:"default:1"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`

	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:TournamentID"`
}

// TeamAssignment groups volunteers into a team under a leader, optionally
// pinned to a ground. MemberIDs stores comma-separated volunteer ids, a
// layout kept from the admin console this backend serves.
type TeamAssignment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TeamName    string     `json:"team_name" gorm:"not null;size:150"`
	LeaderID    uint       `json:"leader_id" gorm:"not null;index"`
	Leader      *Volunteer `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	MemberIDs   string     `json:"member_ids" gorm:"type:text"`
	GroundID    *uint      `json:"ground_id" gorm:"index"`
	Ground      *Ground    `json:"ground,omitempty" gorm:"foreignKey:GroundID"`
	CreatedDate time.Time  `json:"created_date"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false;index"`
	Version     int        `json:"version" gorm:"default:1"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

func (TeamAssignment) TableName() string {
	return "team_assignments"
}
