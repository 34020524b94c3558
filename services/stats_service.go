package services

import (
	"github.com/sitecheck-simple/database"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
)

// StatsService aggregates platform-wide inspection statistics
type StatsService struct{}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{}
}

// GetPlatformStats collects user and project counts plus the average final
// score over completed inspections.
func (s *StatsService) GetPlatformStats() (dto.PlatformStatsResponse, error) {
	var stats dto.PlatformStatsResponse

	if err := database.DB.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return stats, err
	}

	if err := database.DB.Model(&models.Project{}).Count(&stats.Projects).Error; err != nil {
		return stats, err
	}

	if err := database.DB.Model(&models.Project{}).
		Where("is_completed = ?", true).
		Count(&stats.CompletedProjects).Error; err != nil {
		return stats, err
	}

	if stats.CompletedProjects > 0 {
		var avg float64
		err := database.DB.Model(&models.Project{}).
			Where("is_completed = ? AND final_score IS NOT NULL", true).
			Select("AVG(final_score)").
			Scan(&avg).Error
		if err != nil {
			return stats, err
		}
		stats.AverageFinalScore = &avg
	}

	return stats, nil
}
