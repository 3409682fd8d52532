// services/archive.go - Tournament Archiver
package services

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
)

// ArchiveService deactivates tournaments whose end date has passed.
type ArchiveService struct {
	interval time.Duration
	stop     chan struct{}
}

var archiveService *ArchiveService

// InitArchiveService initializes the singleton archiver.
func InitArchiveService() {
	archiveService = &ArchiveService{
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

// GetArchiveService returns the initialized archiver.
func GetArchiveService() *ArchiveService {
	return archiveService
}

// Start runs the periodic sweep until Stop is called.
func (s *ArchiveService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := s.SweepNow(); err != nil {
					log.Printf("tournament archive sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("archived %d ended tournament(s)", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the background sweep.
func (s *ArchiveService) Stop() {
	close(s.stop)
}

// SweepNow marks every non-deleted, still-active tournament whose end date
// has passed as inactive. Returns the number of rows updated.
func (s *ArchiveService) SweepNow() (int64, error) {
	db := database.GetDB()
	if db == nil {
		return 0, nil
	}

	now := time.Now()
	res := db.Model(&models.Tournament{}).
		Where("is_deleted = ? AND is_active = ? AND end_date < ?", false, true, now).
		Updates(map[string]interface{}{"is_active": false, "updated_at": now})

	return res.RowsAffected, res.Error
}
