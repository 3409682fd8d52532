// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"shaurya/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Organization{},
		&models.AbilityType{},
		&models.Participant{},
		&models.Volunteer{},
		&models.Ground{},
		&models.Tournament{},
		&models.Activity{},
		&models.ActivityCategory{},
		&models.GroundAllocation{},
		&models.TeamAssignment{},
		&models.Game{},
		&models.ParticipantGame{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("All migrations completed successfully")
}

// createIndexes creates indexes the conflict scan and the game lookups
// depend on.
func createIndexes() {
	db := GetDB()

	// Allocation conflict scans filter by ground and order by time
	db.Exec("CREATE INDEX IF NOT EXISTS idx_allocations_ground_start ON ground_allocations(ground_id, start_time)")

	// Game code lookups and uniqueness checks
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_code ON games(game_code)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_disability_age ON games(disability_type_code, age_category)")

	// Participation aggregation groups by game
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participant_games_game ON participant_games(game_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participant_games_participant ON participant_games(participant_id)")
}
