// handlers/team_assignments.go
package handlers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

type teamAssignmentView struct {
	ID          uint      `json:"id"`
	TeamName    string    `json:"team_name"`
	LeaderID    uint      `json:"leader_id"`
	LeaderName  string    `json:"leader_name"`
	MemberIDs   string    `json:"member_ids"`
	GroundID    *uint     `json:"ground_id"`
	GroundName  *string   `json:"ground_name"`
	CreatedDate time.Time `json:"created_date"`
	Version     int       `json:"version"`
}

func teamView(t models.TeamAssignment) teamAssignmentView {
	view := teamAssignmentView{
		ID:          t.ID,
		TeamName:    t.TeamName,
		LeaderID:    t.LeaderID,
		LeaderName:  "Unknown",
		MemberIDs:   t.MemberIDs,
		GroundID:    t.GroundID,
		CreatedDate: t.CreatedDate,
		Version:     t.Version,
	}
	if t.Leader != nil {
		view.LeaderName = t.Leader.Name
	}
	if t.Ground != nil {
		view.GroundName = &t.Ground.Name
	}
	return view
}

// parseMemberIDs splits the comma-separated member list, dropping anything
// that is not a positive integer.
func parseMemberIDs(raw string) []uint {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && n > 0 {
			ids = append(ids, uint(n))
		}
	}
	return ids
}

// GET /api/TeamAssignments
func GetTeamAssignments(c *fiber.Ctx) error {
	db := database.GetDB()

	var teams []models.TeamAssignment
	if err := db.Preload("Leader").Preload("Ground").
		Where("is_deleted = ?", false).
		Find(&teams).Error; err != nil {
		log.Printf("Error fetching team assignments: %v", err)
		return utils.Error(c, 500, "Failed to fetch team assignments")
	}

	views := make([]teamAssignmentView, len(teams))
	for i, t := range teams {
		views[i] = teamView(t)
	}

	return c.JSON(views)
}

// GET /api/TeamAssignments/:id
func GetTeamAssignment(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid team assignment ID")
	}

	db := database.GetDB()

	var team models.TeamAssignment
	if err := db.Preload("Leader").Preload("Ground").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&team).Error; err != nil {
		return utils.Error(c, 404, "Team assignment not found")
	}

	return c.JSON(teamView(team))
}

// GetTeamMembers expands the MemberIDs list into volunteer records.
// GET /api/TeamAssignments/:id/Members
func GetTeamMembers(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid team assignment ID")
	}

	db := database.GetDB()

	var team models.TeamAssignment
	if err := db.Preload("Leader").Preload("Ground").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&team).Error; err != nil {
		return utils.Error(c, 404, "Team assignment not found")
	}

	memberIDs := parseMemberIDs(team.MemberIDs)

	var members []models.Volunteer
	if len(memberIDs) > 0 {
		if err := db.Where("id IN ? AND is_deleted = ?", memberIDs, false).Find(&members).Error; err != nil {
			log.Printf("Error fetching members for team %d: %v", id, err)
			return utils.Error(c, 500, "Failed to fetch team members")
		}
	}

	view := teamView(team)
	return c.JSON(fiber.Map{
		"id":           view.ID,
		"team_name":    view.TeamName,
		"leader_id":    view.LeaderID,
		"leader_name":  view.LeaderName,
		"members":      members,
		"member_count": len(members),
		"ground_id":    view.GroundID,
		"ground_name":  view.GroundName,
		"created_date": view.CreatedDate,
	})
}

// POST /api/TeamAssignments
func CreateTeamAssignment(c *fiber.Ctx) error {
	var team models.TeamAssignment
	if err := c.BodyParser(&team); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if team.TeamName == "" {
		return utils.Error(c, 400, "Team name is required")
	}

	db := database.GetDB()

	var leader models.Volunteer
	if err := db.Where("id = ? AND is_deleted = ?", team.LeaderID, false).First(&leader).Error; err != nil {
		return utils.Error(c, 400, "Invalid leader ID")
	}

	team.ID = 0
	team.Leader = nil
	team.Ground = nil
	team.IsDeleted = false
	team.Version = 1
	team.CreatedDate = time.Now()

	if err := db.Create(&team).Error; err != nil {
		log.Printf("Error creating team assignment: %v", err)
		return utils.Error(c, 500, "Failed to create team assignment")
	}

	return c.Status(201).JSON(team)
}

// PUT /api/TeamAssignments/:id
func UpdateTeamAssignment(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid team assignment ID")
	}

	var team models.TeamAssignment
	if err := c.BodyParser(&team); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if team.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if team.TeamName == "" {
		return utils.Error(c, 400, "Team name is required")
	}

	db := database.GetDB()
	res := db.Model(&models.TeamAssignment{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, team.Version, false).
		Updates(map[string]interface{}{
			"team_name":  team.TeamName,
			"leader_id":  team.LeaderID,
			"member_ids": team.MemberIDs,
			"ground_id":  team.GroundID,
			"version":    team.Version + 1,
		})
	if res.Error != nil {
		log.Printf("Error updating team assignment %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update team assignment")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.TeamAssignment{}, id)
	}

	return c.SendStatus(204)
}

// AssignGround points a team at a ground (or clears it with null).
// PUT /api/TeamAssignments/:id/AssignGround
func AssignGround(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid team assignment ID")
	}

	var req struct {
		GroundID *uint `json:"ground_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	db := database.GetDB()

	var team models.TeamAssignment
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&team).Error; err != nil {
		return utils.Error(c, 404, "Team assignment not found")
	}

	if req.GroundID != nil {
		var ground models.Ground
		if err := db.Where("id = ? AND is_deleted = ?", *req.GroundID, false).First(&ground).Error; err != nil {
			return utils.Error(c, 400, "Invalid ground ID")
		}
	}

	if err := db.Model(&team).Update("ground_id", req.GroundID).Error; err != nil {
		log.Printf("Error assigning ground to team %d: %v", id, err)
		return utils.Error(c, 500, "Failed to assign ground")
	}

	return c.SendStatus(204)
}

// DELETE /api/TeamAssignments/:id
func DeleteTeamAssignment(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid team assignment ID")
	}

	db := database.GetDB()

	var team models.TeamAssignment
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&team).Error; err != nil {
		return utils.Error(c, 404, "Team assignment not found")
	}

	if err := db.Model(&team).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting team assignment %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete team assignment")
	}

	return c.SendStatus(204)
}
