// database/seed.go - Reference + Demo Data Seeding
package database

import (
	"log"
	"time"

	"shaurya/models"
)

// SeedRoles ensures the two application roles exist. Safe to run on every
// startup.
func SeedRoles() {
	db := GetDB()

	roles := []models.Role{
		{Name: models.RoleParticipant, Permissions: "ViewActivities"},
		{Name: models.RoleVolunteer, Permissions: "ManageActivities,HelpParticipants"},
	}

	for _, role := range roles {
		var existing models.Role
		if err := db.Where("name = ?", role.Name).First(&existing).Error; err != nil {
			if err := db.Create(&role).Error; err != nil {
				log.Printf("Failed to seed role %s: %v", role.Name, err)
			}
		}
	}
}

// SeedDemoData loads a small demo dataset: ability types, an organization,
// activities, grounds and two sample allocations. Only runs against an
// empty database.
func SeedDemoData() {
	db := GetDB()

	var count int64
	db.Model(&models.AbilityType{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding demo data...")

	abilityTypes := []models.AbilityType{
		{Name: "Hearing Impairment", Description: "Partial or total inability to hear"},
		{Name: "Visual Impairment", Description: "Partial or total inability to see"},
		{Name: "Mobility Impairment", Description: "Difficulty walking or moving"},
	}
	if err := db.Create(&abilityTypes).Error; err != nil {
		log.Printf("Failed to seed ability types: %v", err)
		return
	}

	org := models.Organization{Name: "Hope Foundation", Contact: "hope@example.org", CreatedDate: time.Now()}
	if err := db.Create(&org).Error; err != nil {
		log.Printf("Failed to seed organization: %v", err)
		return
	}

	activities := []models.Activity{
		{Name: "Wheelchair Basketball", Rules: "Standard 5v5 rules apply"},
		{Name: "Blind Running", Rules: "Tethered guide required"},
	}
	if err := db.Create(&activities).Error; err != nil {
		log.Printf("Failed to seed activities: %v", err)
		return
	}

	db.Create(&models.ActivityCategory{
		ActivityID:    activities[1].ID,
		AbilityTypeID: abilityTypes[1].ID,
	})

	grounds := []models.Ground{
		{Name: "Main Arena", Location: "City Sports Complex"},
		{Name: "Open Ground", Location: "Community Park"},
	}
	if err := db.Create(&grounds).Error; err != nil {
		log.Printf("Failed to seed grounds: %v", err)
		return
	}

	day := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	db.Create(&[]models.GroundAllocation{
		{
			GroundID:   grounds[0].ID,
			ActivityID: activities[0].ID,
			StartTime:  day.Add(10 * time.Hour),
			EndTime:    day.Add(12 * time.Hour),
		},
		{
			GroundID:   grounds[1].ID,
			ActivityID: activities[1].ID,
			StartTime:  day.Add(13 * time.Hour),
			EndTime:    day.Add(14*time.Hour + 30*time.Minute),
		},
	})

	log.Println("Demo data seeded")
}
