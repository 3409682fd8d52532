package handlers

import (
	"fmt"
	"testing"

	"shaurya/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationBody(participantID, gameID uint) map[string]interface{} {
	return map[string]interface{}{
		"participant_id": participantID,
		"game_id":        gameID,
	}
}

func TestCreateParticipantGameChecksAgeBand(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	resp := doJSON(t, app, "POST", "/api/Games", gameBody(ability.ID, "Sprint", "1A02"))
	require.Equal(t, 201, resp.StatusCode)
	var game models.Game
	decodeBody(t, resp, &game)

	// Age 10 lands in band A, matching the game.
	inBand := seedParticipant(t, db, org, ability, "Asha", 10)
	resp = doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(inBand.ID, game.ID))
	require.Equal(t, 201, resp.StatusCode)

	var registration models.ParticipantGame
	decodeBody(t, resp, &registration)
	assert.NotZero(t, registration.ID)
	assert.False(t, registration.RegisteredDate.IsZero())

	// Age 15 is band B, not this game's band.
	wrongBand := seedParticipant(t, db, org, ability, "Ravi", 15)
	resp = doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(wrongBand.ID, game.ID))
	assert.Equal(t, 400, resp.StatusCode)

	// Age 30 is outside every band.
	outOfRange := seedParticipant(t, db, org, ability, "Meena", 30)
	resp = doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(outOfRange.ID, game.ID))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateParticipantGameRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	resp := doJSON(t, app, "POST", "/api/Games", gameBody(ability.ID, "Sprint", "1A02"))
	require.Equal(t, 201, resp.StatusCode)
	var game models.Game
	decodeBody(t, resp, &game)

	participant := seedParticipant(t, db, org, ability, "Asha", 10)
	require.Equal(t, 201, doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(participant.ID, game.ID)).StatusCode)

	resp = doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(participant.ID, game.ID))
	assert.Equal(t, 409, resp.StatusCode)
}

func TestCreateParticipantGameValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	resp := doJSON(t, app, "POST", "/api/Games", gameBody(ability.ID, "Sprint", "1A02"))
	require.Equal(t, 201, resp.StatusCode)
	var game models.Game
	decodeBody(t, resp, &game)

	participant := seedParticipant(t, db, org, ability, "Asha", 10)

	assert.Equal(t, 400, doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(999, game.ID)).StatusCode)
	assert.Equal(t, 400, doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(participant.ID, 999)).StatusCode)
}

func TestDeleteParticipantGameAllowsReRegistration(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	resp := doJSON(t, app, "POST", "/api/Games", gameBody(ability.ID, "Sprint", "1A02"))
	require.Equal(t, 201, resp.StatusCode)
	var game models.Game
	decodeBody(t, resp, &game)

	participant := seedParticipant(t, db, org, ability, "Asha", 10)

	resp = doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(participant.ID, game.ID))
	require.Equal(t, 201, resp.StatusCode)
	var registration models.ParticipantGame
	decodeBody(t, resp, &registration)

	require.Equal(t, 204, doJSON(t, app, "DELETE", fmt.Sprintf("/api/ParticipantGames/%d", registration.ID), nil).StatusCode)
	assert.Equal(t, 404, doJSON(t, app, "GET", fmt.Sprintf("/api/ParticipantGames/%d", registration.ID), nil).StatusCode)

	// The cancelled registration no longer blocks a fresh one.
	assert.Equal(t, 201, doJSON(t, app, "POST", "/api/ParticipantGames", registrationBody(participant.ID, game.ID)).StatusCode)
}
