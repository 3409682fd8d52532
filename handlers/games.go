// handlers/games.go - Game catalogue, lookups and reports
package handlers

import (
	"fmt"
	"log"
	"sort"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/services"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// validateGameCode checks the 4-character code, fills the derived fields
// from its decomposition and rejects bodies whose explicit fields disagree
// with the code.
func validateGameCode(game *models.Game) error {
	disability, band, number, err := services.DecomposeGameCode(game.GameCode)
	if err != nil {
		return err
	}

	if game.DisabilityTypeCode != 0 && game.DisabilityTypeCode != disability {
		return fmt.Errorf("disability type code %d does not match game code %s", game.DisabilityTypeCode, game.GameCode)
	}
	if game.AgeCategory != "" && game.AgeCategory != band {
		return fmt.Errorf("age category %s does not match game code %s", game.AgeCategory, game.GameCode)
	}
	if game.GameCodeNumber != 0 && game.GameCodeNumber != number {
		return fmt.Errorf("game number %d does not match game code %s", game.GameCodeNumber, game.GameCode)
	}

	start, end, _ := services.BandRange(band)
	game.DisabilityTypeCode = disability
	game.AgeCategory = band
	game.GameCodeNumber = number
	game.AgeRangeStart = start
	game.AgeRangeEnd = end
	return nil
}

// GET /api/Games
func GetGames(c *fiber.Ctx) error {
	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").
		Where("is_deleted = ?", false).
		Order("disability_type_code, age_category, game_code_number").
		Find(&games).Error; err != nil {
		log.Printf("Error fetching games: %v", err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	return c.JSON(games)
}

// GET /api/Games/:id
func GetGame(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid game ID")
	}

	db := database.GetDB()

	var game models.Game
	if err := db.Preload("AbilityType").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&game).Error; err != nil {
		return utils.Error(c, 404, "Game not found")
	}

	return c.JSON(game)
}

// GET /api/Games/ByCode/:code
func GetGameByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	db := database.GetDB()

	var game models.Game
	if err := db.Preload("AbilityType").
		Where("game_code = ? AND is_deleted = ?", code, false).
		First(&game).Error; err != nil {
		return utils.Error(c, 404, fmt.Sprintf("Game with code %s not found", code))
	}

	return c.JSON(game)
}

// GET /api/Games/ByDisabilityType/:code
func GetGamesByDisabilityType(c *fiber.Ctx) error {
	code, err := utils.ParseIDParam(c, "code")
	if err != nil {
		return utils.Error(c, 400, "Invalid disability type code")
	}

	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").
		Where("disability_type_code = ? AND is_deleted = ?", code, false).
		Order("age_category, game_code_number").
		Find(&games).Error; err != nil {
		log.Printf("Error fetching games for disability type %d: %v", code, err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	return c.JSON(games)
}

// GET /api/Games/ByAgeCategory/:cat
func GetGamesByAgeCategory(c *fiber.Ctx) error {
	cat := c.Params("cat")
	if _, _, ok := services.BandRange(cat); !ok {
		return utils.Error(c, 400, "Age category must be one of A, B, C, D")
	}

	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").
		Where("age_category = ? AND is_deleted = ?", cat, false).
		Order("disability_type_code, game_code_number").
		Find(&games).Error; err != nil {
		log.Printf("Error fetching games for age category %s: %v", cat, err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	return c.JSON(games)
}

// GetGamesByAgeAndAbility buckets the age into its band and returns the
// matching games for the ability type.
// GET /api/Games/ByAgeAndAbility?age=&abilityTypeId=
func GetGamesByAgeAndAbility(c *fiber.Ctx) error {
	age, ok := utils.QueryInt(c, "age")
	if !ok {
		return utils.Error(c, 400, "age query parameter is required")
	}
	abilityTypeID, ok := utils.QueryInt(c, "abilityTypeId")
	if !ok {
		return utils.Error(c, 400, "abilityTypeId query parameter is required")
	}

	band, err := services.AgeBand(age)
	if err != nil {
		return utils.Error(c, 400, err.Error())
	}

	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").
		Where("age_category = ? AND ability_type_id = ? AND is_deleted = ?", band, abilityTypeID, false).
		Order("name").
		Find(&games).Error; err != nil {
		log.Printf("Error fetching games for age %d and ability type %d: %v", age, abilityTypeID, err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	return c.JSON(games)
}

type groupedGame struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	GameCode    string `json:"game_code"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

type ageGroup struct {
	AgeCategory string        `json:"age_category"`
	AgeRange    string        `json:"age_range"`
	Games       []groupedGame `json:"games"`
}

type disabilityGroup struct {
	DisabilityTypeCode int        `json:"disability_type_code"`
	DisabilityTypeName string     `json:"disability_type_name"`
	Games              []ageGroup `json:"games"`
}

// GetGamesGroupedByDisability groups non-deleted games by disability type,
// then by age category.
// GET /api/Games/GroupedByDisability
func GetGamesGroupedByDisability(c *fiber.Ctx) error {
	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").Where("is_deleted = ?", false).Find(&games).Error; err != nil {
		log.Printf("Error fetching games for grouping: %v", err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	byDisability := make(map[int][]models.Game)
	for _, g := range games {
		byDisability[g.DisabilityTypeCode] = append(byDisability[g.DisabilityTypeCode], g)
	}

	result := make([]disabilityGroup, 0, len(byDisability))
	for code, group := range byDisability {
		name := ""
		if group[0].AbilityType != nil {
			name = group[0].AbilityType.Name
		}

		byBand := make(map[string][]models.Game)
		for _, g := range group {
			byBand[g.AgeCategory] = append(byBand[g.AgeCategory], g)
		}

		ageGroups := make([]ageGroup, 0, len(byBand))
		for band, bandGames := range byBand {
			sort.Slice(bandGames, func(i, j int) bool {
				return bandGames[i].GameCode < bandGames[j].GameCode
			})

			items := make([]groupedGame, len(bandGames))
			for i, g := range bandGames {
				items[i] = groupedGame{
					ID:          g.ID,
					Name:        g.Name,
					GameCode:    g.GameCode,
					Description: g.Description,
					Rules:       g.Rules,
				}
			}

			ageGroups = append(ageGroups, ageGroup{
				AgeCategory: band,
				AgeRange:    fmt.Sprintf("%d-%d", bandGames[0].AgeRangeStart, bandGames[0].AgeRangeEnd),
				Games:       items,
			})
		}
		sort.Slice(ageGroups, func(i, j int) bool {
			return ageGroups[i].AgeCategory < ageGroups[j].AgeCategory
		})

		result = append(result, disabilityGroup{
			DisabilityTypeCode: code,
			DisabilityTypeName: name,
			Games:              ageGroups,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DisabilityTypeCode < result[j].DisabilityTypeCode
	})

	return c.JSON(result)
}

type gameParticipation struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	GameCode         string `json:"game_code"`
	AgeCategory      string `json:"age_category"`
	AgeRange         string `json:"age_range"`
	ParticipantCount int64  `json:"participant_count"`
}

type disabilityParticipation struct {
	DisabilityTypeCode int                 `json:"disability_type_code"`
	DisabilityTypeName string              `json:"disability_type_name"`
	TotalParticipants  int64               `json:"total_participants"`
	Games              []gameParticipation `json:"games"`
}

// GetGameParticipation reports registration counts per game, grouped by
// disability type. Games with no registrations report a count of zero,
// never a missing row.
// GET /api/Games/Participation
func GetGameParticipation(c *fiber.Ctx) error {
	db := database.GetDB()

	var games []models.Game
	if err := db.Preload("AbilityType").Where("is_deleted = ?", false).Find(&games).Error; err != nil {
		log.Printf("Error fetching games for participation report: %v", err)
		return utils.Error(c, 500, "Failed to fetch games")
	}

	type countRow struct {
		GameID uint
		Count  int64
	}
	var counts []countRow
	if err := db.Model(&models.ParticipantGame{}).
		Select("game_id, COUNT(*) as count").
		Where("is_deleted = ?", false).
		Group("game_id").
		Scan(&counts).Error; err != nil {
		log.Printf("Error aggregating participation: %v", err)
		return utils.Error(c, 500, "Failed to aggregate participation")
	}

	countByGame := make(map[uint]int64, len(counts))
	for _, row := range counts {
		countByGame[row.GameID] = row.Count
	}

	byDisability := make(map[int][]models.Game)
	for _, g := range games {
		byDisability[g.DisabilityTypeCode] = append(byDisability[g.DisabilityTypeCode], g)
	}

	result := make([]disabilityParticipation, 0, len(byDisability))
	for code, group := range byDisability {
		name := ""
		if group[0].AbilityType != nil {
			name = group[0].AbilityType.Name
		}

		sort.Slice(group, func(i, j int) bool {
			if group[i].AgeCategory != group[j].AgeCategory {
				return group[i].AgeCategory < group[j].AgeCategory
			}
			return group[i].Name < group[j].Name
		})

		var total int64
		items := make([]gameParticipation, len(group))
		for i, g := range group {
			count := countByGame[g.ID]
			total += count
			items[i] = gameParticipation{
				ID:               g.ID,
				Name:             g.Name,
				GameCode:         g.GameCode,
				AgeCategory:      g.AgeCategory,
				AgeRange:         fmt.Sprintf("%d-%d", g.AgeRangeStart, g.AgeRangeEnd),
				ParticipantCount: count,
			}
		}

		result = append(result, disabilityParticipation{
			DisabilityTypeCode: code,
			DisabilityTypeName: name,
			TotalParticipants:  total,
			Games:              items,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DisabilityTypeCode < result[j].DisabilityTypeCode
	})

	return c.JSON(result)
}

// POST /api/Games
func CreateGame(c *fiber.Ctx) error {
	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if game.Name == "" {
		return utils.Error(c, 400, "Game name is required")
	}
	if err := validateGameCode(&game); err != nil {
		return utils.Error(c, 400, err.Error())
	}

	db := database.GetDB()

	var ability models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", game.AbilityTypeID, false).First(&ability).Error; err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	var existing models.Game
	if err := db.Where("game_code = ? AND is_deleted = ?", game.GameCode, false).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("Game with code %s already exists", game.GameCode),
		})
	}

	game.ID = 0
	game.AbilityType = nil
	game.IsDeleted = false
	game.Version = 1
	game.CreatedDate = time.Now()
	game.UpdatedDate = nil

	if err := db.Create(&game).Error; err != nil {
		log.Printf("Error creating game: %v", err)
		return utils.Error(c, 500, "Failed to create game")
	}

	return c.Status(201).JSON(game)
}

// PUT /api/Games/:id
func UpdateGame(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid game ID")
	}

	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if game.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if game.Name == "" {
		return utils.Error(c, 400, "Game name is required")
	}
	if err := validateGameCode(&game); err != nil {
		return utils.Error(c, 400, err.Error())
	}

	db := database.GetDB()

	var count int64
	db.Model(&models.Game{}).
		Where("game_code = ? AND id <> ? AND is_deleted = ?", game.GameCode, id, false).
		Count(&count)
	if count > 0 {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("Game with code %s already exists", game.GameCode),
		})
	}

	now := time.Now()
	res := db.Model(&models.Game{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, game.Version, false).
		Updates(map[string]interface{}{
			"name":                 game.Name,
			"game_code":            game.GameCode,
			"game_code_number":     game.GameCodeNumber,
			"disability_type_code": game.DisabilityTypeCode,
			"age_category":         game.AgeCategory,
			"age_range_start":      game.AgeRangeStart,
			"age_range_end":        game.AgeRangeEnd,
			"ability_type_id":      game.AbilityTypeID,
			"description":          game.Description,
			"rules":                game.Rules,
			"version":              game.Version + 1,
			"updated_date":         now,
		})
	if res.Error != nil {
		log.Printf("Error updating game %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update game")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Game{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Games/:id
func DeleteGame(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid game ID")
	}

	db := database.GetDB()

	var game models.Game
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&game).Error; err != nil {
		return utils.Error(c, 404, "Game not found")
	}

	now := time.Now()
	if err := db.Model(&game).Updates(map[string]interface{}{
		"is_deleted":   true,
		"updated_date": now,
	}).Error; err != nil {
		log.Printf("Error deleting game %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete game")
	}

	return c.SendStatus(204)
}
