// models/game.go
package models

import (
	"time"
)

// Game is a competition event identified by a 4-character code:
// one digit for the disability type (1-6), one letter for the age
// category (A-D) and a zero-padded two-digit game number, e.g. "1A02".
type Game struct {
	ID                 uint         `json:"id" gorm:"primaryKey"`
	Name               string       `json:"name" gorm:"not null;size:150"`
	GameCode           string       `json:"game_code" gorm:"not null;size:4;index"`
	GameCodeNumber     int          `json:"game_code_number"`
	DisabilityTypeCode int          `json:"disability_type_code" gorm:"index"`
	AgeCategory        string       `json:"age_category" gorm:"size:1;index"`
	AgeRangeStart      int          `json:"age_range_start"`
	AgeRangeEnd        int          `json:"age_range_end"`
	AbilityTypeID      uint         `json:"ability_type_id" gorm:"not null;index"`
	AbilityType        *AbilityType `json:"ability_type,omitempty" gorm:"foreignKey:AbilityTypeID"`
	Description        string       `json:"description" gorm:"type:text"`
	Rules              string       `json:"rules" gorm:"type:text"`
	IsDeleted          bool         `json:"is_deleted" gorm:"default:false;index"`
	Version            int          `json:"version" gorm:"default:1"`
	CreatedDate        time.Time    `json:"created_date"`
	UpdatedDate        *time.Time   `json:"updated_date,omitempty"`
}

// ParticipantGame registers a participant for a game.
type ParticipantGame struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	ParticipantID  uint         `json:"participant_id" gorm:"not null;index"`
	Participant    *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	GameID         uint         `json:"game_id" gorm:"not null;index"`
	Game           *Game        `json:"game,omitempty" gorm:"foreignKey:GameID"`
	RegisteredDate time.Time    `json:"registered_date"`
	IsDeleted      bool         `json:"is_deleted" gorm:"default:false;index"`
}

func (Game) TableName() string {
	return "games"
}

func (ParticipantGame) TableName() string {
	return "participant_games"
}
