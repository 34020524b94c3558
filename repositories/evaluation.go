package repositories

import (
	"time"

	"github.com/sitecheck-simple/database"
	"github.com/sitecheck-simple/models"
	"gorm.io/gorm"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct{}

// NewEvaluationRepository creates a new evaluation repository instance
func NewEvaluationRepository() *EvaluationRepository {
	return &EvaluationRepository{}
}

// FindByProjectID retrieves the evaluation for a project, with its answers
// in stable insertion order.
func (r *EvaluationRepository) FindByProjectID(projectID string) (models.Evaluation, error) {
	var evaluation models.Evaluation
	result := database.DB.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		First(&evaluation, "project_id = ?", projectID)
	return evaluation, result.Error
}

// Create inserts a new evaluation into the database
func (r *EvaluationRepository) Create(evaluation models.Evaluation) (models.Evaluation, error) {
	result := database.DB.Create(&evaluation)
	return evaluation, result.Error
}

// Exists checks if an evaluation exists for a project
func (r *EvaluationRepository) Exists(projectID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Evaluation{}).Where("project_id = ?", projectID).Count(&count).Error
	return count > 0, err
}

// SaveAnswer upserts one answer and rewrites the evaluation aggregates in a
// single transaction, so the stored totals can never drift from the stored
// answer set. Upsert keeps the original row (and so the original insertion
// order) when the question was already answered.
func (r *EvaluationRepository) SaveAnswer(projectID string, answer models.Answer, totalScore, maxScore int, percentage float64) error {
	// Gunakan transaction untuk memastikan konsistensi data
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Answer
		err := tx.Where("project_id = ? AND question_id = ?", projectID, answer.QuestionID).First(&existing).Error
		switch {
		case err == nil:
			existing.Score = answer.Score
			existing.Notes = answer.Notes
			existing.Images = answer.Images
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			answer.ProjectID = projectID
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Evaluation{}).
			Where("project_id = ?", projectID).
			Updates(map[string]interface{}{
				"total_score": totalScore,
				"max_score":   maxScore,
				"percentage":  percentage,
				"updated_at":  time.Now(),
			}).Error
	})
}

// Complete stamps the evaluation and denormalizes the final score onto the
// project inside one transaction.
func (r *EvaluationRepository) Complete(projectID string, completedAt time.Time, finalScore float64) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Evaluation{}).
			Where("project_id = ?", projectID).
			Update("completed_at", completedAt).Error; err != nil {
			return err
		}

		return tx.Model(&models.Project{}).
			Where("id = ?", projectID).
			Updates(map[string]interface{}{
				"is_completed": true,
				"final_score":  finalScore,
			}).Error
	})
}

// DeleteByProjectID removes the evaluation and its answers for a project
func (r *EvaluationRepository) DeleteByProjectID(projectID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", projectID).Delete(&models.Evaluation{}).Error
	})
}
