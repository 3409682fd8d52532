// models/ground.go
package models

import (
	"time"
)

// Ground is a playing field that activities get scheduled onto.
type Ground struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;size:150"`
	Location  string `json:"location" gorm:"size:200"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false;index"`
	Version   int    `json:"version" gorm:"default:1"`

	Allocations []GroundAllocation `json:"allocations,omitempty" gorm:"foreignKey:GroundID"`
}

// Activity is a sport or event that can belong to a tournament.
type Activity struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"not null;size:150"`
	Rules        string      `json:"rules" gorm:"type:text"`
	TournamentID *uint       `json:"tournament_id" gorm:"index"`
	Tournament   *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	IsDeleted    bool        `json:"is_deleted" gorm:"default:false;index"`
	Version      int         `json:"version" gorm:"default:1"`

	Categories  []ActivityCategory `json:"categories,omitempty" gorm:"foreignKey:ActivityID"`
	Allocations []GroundAllocation `json:"allocations,omitempty" gorm:"foreignKey:ActivityID"`
}

// ActivityCategory links an activity to an ability type, optionally
// marking the ability type as excluded from the activity.
type ActivityCategory struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	ActivityID    uint         `json:"activity_id" gorm:"not null;index"`
	Activity      *Activity    `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
	AbilityTypeID uint         `json:"ability_type_id" gorm:"not null;index"`
	AbilityType   *AbilityType `json:"ability_type,omitempty" gorm:"foreignKey:AbilityTypeID"`
	ExclusionType string       `json:"exclusion_type" gorm:"size:100"`
}

// GroundAllocation books a ground for an activity over [start_time, end_time).
// Rows are hard-deleted on cancellation; there is no soft-delete flag here.
type GroundAllocation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	GroundID   uint      `json:"ground_id" gorm:"not null;index"`
	Ground     *Ground   `json:"ground,omitempty" gorm:"foreignKey:GroundID"`
	ActivityID uint      `json:"activity_id" gorm:"not null;index"`
	Activity   *Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
	StartTime  time.Time `json:"start_time" gorm:"not null"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
}

func (Ground) TableName() string {
	return "grounds"
}

func (Activity) TableName() string {
	return "activities"
}

func (ActivityCategory) TableName() string {
	return "activity_categories"
}

func (GroundAllocation) TableName() string {
	return "ground_allocations"
}
