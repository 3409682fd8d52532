package handlers

import (
	"fmt"
	"testing"
	"time"

	"shaurya/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSchedulingFixtures(t *testing.T, db *gorm.DB) (models.Ground, models.Activity) {
	t.Helper()

	ground := models.Ground{Name: "Main Field", Location: "North campus"}
	require.NoError(t, db.Create(&ground).Error)

	activity := models.Activity{Name: "Wheelchair Race"}
	require.NoError(t, db.Create(&activity).Error)

	return ground, activity
}

func allocationBody(groundID, activityID uint, startHour, endHour int) map[string]interface{} {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return map[string]interface{}{
		"ground_id":   groundID,
		"activity_id": activityID,
		"start_time":  day.Add(time.Duration(startHour) * time.Hour).Format(time.RFC3339),
		"end_time":    day.Add(time.Duration(endHour) * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateGroundAllocationRejectsOverlap(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 12))
	require.Equal(t, 201, resp.StatusCode)

	var first models.GroundAllocation
	decodeBody(t, resp, &first)
	assert.NotZero(t, first.ID)

	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 11, 13))
	require.Equal(t, 409, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(first.ID), body["conflicting_allocation_id"])

	// Adjacent booking starting exactly at the previous end is allowed.
	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 12, 13))
	assert.Equal(t, 201, resp.StatusCode)

	var count int64
	db.Model(&models.GroundAllocation{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateGroundAllocationRejectsBadInterval(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 12, 10))
	assert.Equal(t, 400, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 10))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateGroundAllocationValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(999, activity.ID, 10, 12))
	assert.Equal(t, 400, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, 999, 10, 12))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateGroundAllocationExcludesItself(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 12))
	require.Equal(t, 201, resp.StatusCode)

	var allocation models.GroundAllocation
	decodeBody(t, resp, &allocation)

	// Shifting the booking over its own old window must not conflict.
	body := allocationBody(ground.ID, activity.ID, 11, 13)
	body["id"] = allocation.ID
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/GroundAllocations/%d", allocation.ID), body)
	require.Equal(t, 204, resp.StatusCode)

	var saved models.GroundAllocation
	require.NoError(t, db.First(&saved, allocation.ID).Error)
	assert.Equal(t, 11, saved.StartTime.UTC().Hour())
	assert.Equal(t, 13, saved.EndTime.UTC().Hour())
}

func TestUpdateGroundAllocationConflictsWithOthers(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 8, 10))
	require.Equal(t, 201, resp.StatusCode)
	var first models.GroundAllocation
	decodeBody(t, resp, &first)

	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 12))
	require.Equal(t, 201, resp.StatusCode)
	var second models.GroundAllocation
	decodeBody(t, resp, &second)

	body := allocationBody(ground.ID, activity.ID, 9, 11)
	body["id"] = second.ID
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/GroundAllocations/%d", second.ID), body)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestDeleteGroundAllocationRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()
	ground, activity := seedSchedulingFixtures(t, db)

	resp := doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 12))
	require.Equal(t, 201, resp.StatusCode)
	var allocation models.GroundAllocation
	decodeBody(t, resp, &allocation)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/GroundAllocations/%d", allocation.ID), nil)
	require.Equal(t, 204, resp.StatusCode)

	var count int64
	db.Model(&models.GroundAllocation{}).Where("id = ?", allocation.ID).Count(&count)
	assert.Zero(t, count)

	// Freed slot can be booked again.
	resp = doJSON(t, app, "POST", "/api/GroundAllocations", allocationBody(ground.ID, activity.ID, 10, 12))
	assert.Equal(t, 201, resp.StatusCode)
}
