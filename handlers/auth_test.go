package handlers

import (
	"testing"
	"time"

	"shaurya/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedRoles(t *testing.T, db *gorm.DB) (models.Role, models.Role) {
	t.Helper()

	participant := models.Role{Name: models.RoleParticipant}
	require.NoError(t, db.Create(&participant).Error)
	volunteer := models.Role{Name: models.RoleVolunteer}
	require.NoError(t, db.Create(&volunteer).Error)
	return participant, volunteer
}

func seedUser(t *testing.T, db *gorm.DB, org models.Organization, ability models.AbilityType, role models.Role, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:          email,
		Password:       string(hashed),
		Age:            20,
		AbilityTypeID:  ability.ID,
		OrganizationID: org.ID,
		RoleID:         role.ID,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)
	seedRoles(t, db)

	body := map[string]interface{}{
		"email":           "asha@example.org",
		"password":        "s3cret-password",
		"age":             14,
		"ability_type_id": ability.ID,
		"organization_id": org.ID,
	}
	resp := doJSON(t, app, "POST", "/api/Account/register", body)
	require.Equal(t, 201, resp.StatusCode)

	// Same email again is a conflict.
	resp = doJSON(t, app, "POST", "/api/Account/register", body)
	assert.Equal(t, 409, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/Account/login", map[string]interface{}{
		"email":    "asha@example.org",
		"password": "s3cret-password",
	})
	require.Equal(t, 200, resp.StatusCode)

	var loginBody map[string]interface{}
	decodeBody(t, resp, &loginBody)
	token, _ := loginBody["token"].(string)
	assert.NotEmpty(t, token)

	resp = doJSON(t, app, "POST", "/api/Account/login", map[string]interface{}{
		"email":    "asha@example.org",
		"password": "wrong",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)
	seedRoles(t, db)

	// Age must be positive.
	resp := doJSON(t, app, "POST", "/api/Account/register", map[string]interface{}{
		"email":           "kid@example.org",
		"password":        "s3cret-password",
		"age":             0,
		"ability_type_id": ability.ID,
		"organization_id": org.ID,
	})
	assert.Equal(t, 400, resp.StatusCode)

	// References must resolve.
	resp = doJSON(t, app, "POST", "/api/Account/register", map[string]interface{}{
		"email":           "kid@example.org",
		"password":        "s3cret-password",
		"age":             14,
		"ability_type_id": 999,
		"organization_id": org.ID,
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUserAdminRequiresVolunteerRole(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	org, ability := seedCatalog(t, db)
	participantRole, volunteerRole := seedRoles(t, db)

	seedUser(t, db, org, ability, participantRole, "asha@example.org", "s3cret-password")
	seedUser(t, db, org, ability, volunteerRole, "priya@example.org", "s3cret-password")

	// No token at all.
	resp := doJSON(t, app, "GET", "/api/Users", nil)
	assert.Equal(t, 401, resp.StatusCode)

	// Participant token is authenticated but not authorized.
	resp = doJSON(t, app, "POST", "/api/Account/login", map[string]interface{}{
		"email": "asha@example.org", "password": "s3cret-password",
	})
	require.Equal(t, 200, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	participantToken := body["token"].(string)

	resp = doJSON(t, app, "GET", "/api/Users", nil, map[string]string{
		"Authorization": "Bearer " + participantToken,
	})
	assert.Equal(t, 403, resp.StatusCode)

	// Volunteer token passes the guard.
	resp = doJSON(t, app, "POST", "/api/Account/login", map[string]interface{}{
		"email": "priya@example.org", "password": "s3cret-password",
	})
	require.Equal(t, 200, resp.StatusCode)
	decodeBody(t, resp, &body)
	volunteerToken := body["token"].(string)

	resp = doJSON(t, app, "GET", "/api/Users", nil, map[string]string{
		"Authorization": "Bearer " + volunteerToken,
	})
	require.Equal(t, 200, resp.StatusCode)

	var users []map[string]interface{}
	decodeBody(t, resp, &users)
	assert.Len(t, users, 2)
}

func TestUsersRejectsGarbageToken(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	resp := doJSON(t, app, "GET", "/api/Users", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, 401, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/Users", nil, map[string]string{
		"Authorization": "nonsense",
	})
	assert.Equal(t, 401, resp.StatusCode)
}
