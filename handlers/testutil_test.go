package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"shaurya/database"
	"shaurya/middleware"
	"shaurya/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	os.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret-1234")
	os.Setenv("RATE_LIMIT_ENABLED", "false")
}

// setupTestDB points the handlers at a fresh in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	database.SetDB(db)
	t.Cleanup(func() { database.SetDB(nil) })
	return db
}

// newTestApp wires the API routes the way main does.
func newTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	account := api.Group("/Account")
	account.Post("/register", Register)
	account.Post("/login", Login)

	orgs := api.Group("/Organizations")
	orgs.Get("/", GetOrganizations)
	orgs.Get("/:id", GetOrganization)
	orgs.Post("/", CreateOrganization)
	orgs.Put("/:id", UpdateOrganization)
	orgs.Delete("/:id", DeleteOrganization)

	abilities := api.Group("/AbilityTypes")
	abilities.Get("/", GetAbilityTypes)
	abilities.Get("/:id", GetAbilityType)
	abilities.Post("/", CreateAbilityType)
	abilities.Put("/:id", UpdateAbilityType)
	abilities.Delete("/:id", DeleteAbilityType)

	participants := api.Group("/Participants")
	participants.Get("/", GetParticipants)
	participants.Get("/:id", GetParticipant)
	participants.Post("/", CreateParticipant)
	participants.Put("/:id", UpdateParticipant)
	participants.Delete("/:id", DeleteParticipant)

	volunteers := api.Group("/Volunteers")
	volunteers.Get("/", GetVolunteers)
	volunteers.Get("/:id", GetVolunteer)
	volunteers.Post("/", CreateVolunteer)
	volunteers.Put("/:id", UpdateVolunteer)
	volunteers.Delete("/:id", DeleteVolunteer)

	grounds := api.Group("/Grounds")
	grounds.Get("/", GetGrounds)
	grounds.Get("/:id", GetGround)
	grounds.Post("/", CreateGround)
	grounds.Put("/:id", UpdateGround)
	grounds.Delete("/:id", DeleteGround)

	activities := api.Group("/Activities")
	activities.Get("/", GetActivities)
	activities.Get("/:id", GetActivity)
	activities.Post("/", CreateActivity)
	activities.Put("/:id", UpdateActivity)
	activities.Delete("/:id", DeleteActivity)

	allocations := api.Group("/GroundAllocations")
	allocations.Get("/", GetGroundAllocations)
	allocations.Get("/:id", GetGroundAllocation)
	allocations.Post("/", CreateGroundAllocation)
	allocations.Put("/:id", UpdateGroundAllocation)
	allocations.Delete("/:id", DeleteGroundAllocation)

	teams := api.Group("/TeamAssignments")
	teams.Get("/", GetTeamAssignments)
	teams.Get("/:id", GetTeamAssignment)
	teams.Get("/:id/Members", GetTeamMembers)
	teams.Post("/", CreateTeamAssignment)
	teams.Put("/:id", UpdateTeamAssignment)
	teams.Put("/:id/AssignGround", AssignGround)
	teams.Delete("/:id", DeleteTeamAssignment)

	tournaments := api.Group("/Tournaments")
	tournaments.Get("/", GetTournaments)
	tournaments.Get("/:id", GetTournament)
	tournaments.Get("/:id/activities", GetTournamentActivities)
	tournaments.Post("/", CreateTournament)
	tournaments.Post("/:tournamentId/activities/:activityId", AddActivityToTournament)
	tournaments.Put("/:id", UpdateTournament)
	tournaments.Delete("/:id", DeleteTournament)
	tournaments.Delete("/:tournamentId/activities/:activityId", RemoveActivityFromTournament)

	games := api.Group("/Games")
	games.Get("/", GetGames)
	games.Get("/ByCode/:code", GetGameByCode)
	games.Get("/ByDisabilityType/:code", GetGamesByDisabilityType)
	games.Get("/ByAgeCategory/:cat", GetGamesByAgeCategory)
	games.Get("/ByAgeAndAbility", GetGamesByAgeAndAbility)
	games.Get("/GroupedByDisability", GetGamesGroupedByDisability)
	games.Get("/Participation", GetGameParticipation)
	games.Get("/:id", GetGame)
	games.Post("/", CreateGame)
	games.Put("/:id", UpdateGame)
	games.Delete("/:id", DeleteGame)

	registrations := api.Group("/ParticipantGames")
	registrations.Get("/", GetParticipantGames)
	registrations.Get("/:id", GetParticipantGame)
	registrations.Post("/", CreateParticipantGame)
	registrations.Delete("/:id", DeleteParticipantGame)

	users := api.Group("/Users")
	users.Use(middleware.AuthMiddleware)
	users.Use(middleware.RequireRole("Volunteer"))
	users.Get("/", GetUsers)
	users.Get("/:id", GetUser)
	users.Put("/:id", UpdateUser)
	users.Delete("/:id", DeleteUser)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seedCatalog inserts the reference rows most handler tests need.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Organization, models.AbilityType) {
	t.Helper()

	org := models.Organization{Name: "Hope Foundation", Contact: "hope@example.org"}
	require.NoError(t, db.Create(&org).Error)

	ability := models.AbilityType{Name: "Hearing Impairment"}
	require.NoError(t, db.Create(&ability).Error)

	return org, ability
}
