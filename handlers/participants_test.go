package handlers

import (
	"fmt"
	"testing"

	"shaurya/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParticipantAssignsRegistrationRef(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	resp := doJSON(t, app, "POST", "/api/Participants", map[string]interface{}{
		"name":            "Asha",
		"age":             10,
		"organization_id": org.ID,
		"ability_type_id": ability.ID,
	})
	require.Equal(t, 201, resp.StatusCode)

	var participant models.Participant
	decodeBody(t, resp, &participant)
	assert.Len(t, participant.RegistrationRef, 36)
	assert.Equal(t, 1, participant.Version)

	// A second participant gets a different reference.
	resp = doJSON(t, app, "POST", "/api/Participants", map[string]interface{}{
		"name":            "Ravi",
		"age":             15,
		"organization_id": org.ID,
		"ability_type_id": ability.ID,
	})
	require.Equal(t, 201, resp.StatusCode)

	var second models.Participant
	decodeBody(t, resp, &second)
	assert.NotEqual(t, participant.RegistrationRef, second.RegistrationRef)
}

func TestCreateParticipantValidation(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"age": 10, "organization_id": org.ID, "ability_type_id": ability.ID}},
		{"zero age", map[string]interface{}{"name": "Asha", "age": 0, "organization_id": org.ID, "ability_type_id": ability.ID}},
		{"unknown organization", map[string]interface{}{"name": "Asha", "age": 10, "organization_id": 999, "ability_type_id": ability.ID}},
		{"unknown ability type", map[string]interface{}{"name": "Asha", "age": 10, "organization_id": org.ID, "ability_type_id": 999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, "POST", "/api/Participants", tc.body)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestGetParticipantPreloadsReferences(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)
	participant := seedParticipant(t, db, org, ability, "Asha", 10)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/Participants/%d", participant.ID), nil)
	require.Equal(t, 200, resp.StatusCode)

	var fetched models.Participant
	decodeBody(t, resp, &fetched)
	require.NotNil(t, fetched.Organization)
	assert.Equal(t, org.Name, fetched.Organization.Name)
	require.NotNil(t, fetched.AbilityType)
	assert.Equal(t, ability.Name, fetched.AbilityType.Name)
}

func TestSoftDeletedParticipantIsInvisible(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)
	participant := seedParticipant(t, db, org, ability, "Asha", 10)

	require.Equal(t, 204, doJSON(t, app, "DELETE", fmt.Sprintf("/api/Participants/%d", participant.ID), nil).StatusCode)
	assert.Equal(t, 404, doJSON(t, app, "GET", fmt.Sprintf("/api/Participants/%d", participant.ID), nil).StatusCode)

	resp := doJSON(t, app, "GET", "/api/Participants", nil)
	require.Equal(t, 200, resp.StatusCode)
	var participants []models.Participant
	decodeBody(t, resp, &participants)
	assert.Empty(t, participants)

	// Updates against the deleted row report it missing, not conflicted.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/Participants/%d", participant.ID), map[string]interface{}{
		"id":              participant.ID,
		"name":            "Asha",
		"age":             10,
		"organization_id": org.ID,
		"ability_type_id": ability.ID,
		"version":         1,
	})
	assert.Equal(t, 404, resp.StatusCode)
}
