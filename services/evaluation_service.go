package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sitecheck-simple/catalog"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
	"github.com/sitecheck-simple/repositories"
	"gorm.io/gorm"
)

var (
	// ErrUnknownQuestion is returned for answers targeting an id outside the catalog
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrInvalidScore is returned for scores outside the 1..5 scale
	ErrInvalidScore = errors.New("score must be between 1 and 5")

	// ErrAmbiguousAnswer is returned when a submission carries both a score and the notApplicable flag
	ErrAmbiguousAnswer = errors.New("answer cannot be scored and not-applicable at the same time")

	// ErrMissingScore is returned when a submission carries neither a score nor the notApplicable flag
	ErrMissingScore = errors.New("answer needs a score or the notApplicable flag")

	// ErrEvaluationCompleted is returned for answer edits after completion
	ErrEvaluationCompleted = errors.New("evaluation is already completed")

	// ErrEvaluationIncomplete is returned when completing before every question is answered
	ErrEvaluationIncomplete = errors.New("evaluation is incomplete: every question needs an answer")
)

// EvaluationService handles the evaluation lifecycle: lazy creation, answer
// upserts with aggregate recompute, and completion.
type EvaluationService struct {
	projectRepo    *repositories.ProjectRepository
	evaluationRepo *repositories.EvaluationRepository
	scoring        *ScoringService
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService() *EvaluationService {
	return &EvaluationService{
		projectRepo:    repositories.NewProjectRepository(),
		evaluationRepo: repositories.NewEvaluationRepository(),
		scoring:        NewScoringService(),
	}
}

// GetOrCreate returns the project's evaluation, creating an empty one on
// first access. A fresh evaluation starts at the full catalog maximum with
// nothing scored.
func (s *EvaluationService) GetOrCreate(projectID string, userID string, isAdmin bool) (dto.EvaluationResponse, error) {
	if err := s.checkProjectAccess(projectID, userID, isAdmin); err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation, err := s.evaluationRepo.FindByProjectID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		summary := s.scoring.ComputeScore(catalog.Questions, nil)
		evaluation, err = s.evaluationRepo.Create(models.Evaluation{
			ProjectID:  projectID,
			TotalScore: summary.TotalScore,
			MaxScore:   summary.MaxScore,
			Percentage: summary.Percentage,
		})
	}
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	return s.buildResponse(evaluation), nil
}

// UpsertAnswer records or replaces the answer for one question and persists
// the recomputed aggregates in the same transaction. Edits are rejected once
// the evaluation has been completed, so the denormalized final score on the
// project can never go stale.
func (s *EvaluationService) UpsertAnswer(projectID string, req dto.AnswerRequest, userID string, isAdmin bool) (dto.EvaluationResponse, error) {
	if err := s.checkProjectAccess(projectID, userID, isAdmin); err != nil {
		return dto.EvaluationResponse{}, err
	}

	answer, err := answerFromRequest(req)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	// Lazily create the evaluation so answering works on first access too
	response, err := s.GetOrCreate(projectID, userID, isAdmin)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}
	evaluation := response.Evaluation

	if evaluation.CompletedAt != nil {
		return dto.EvaluationResponse{}, ErrEvaluationCompleted
	}

	// Score the candidate answer set before touching the store, so the
	// persisted aggregates always match the persisted answers
	candidate := append(append([]models.Answer{}, evaluation.Answers...), answer)
	summary := s.scoring.ComputeScore(catalog.Questions, candidate)

	err = s.evaluationRepo.SaveAnswer(projectID, answer, summary.TotalScore, summary.MaxScore, summary.Percentage)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation, err = s.evaluationRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	return s.buildResponse(evaluation), nil
}

// Complete stamps the evaluation and snapshots its percentage onto the
// project. It fails when any catalog question is still unanswered.
func (s *EvaluationService) Complete(projectID string, userID string, isAdmin bool) (dto.EvaluationResponse, error) {
	if err := s.checkProjectAccess(projectID, userID, isAdmin); err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation, err := s.evaluationRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EvaluationResponse{}, ErrEvaluationIncomplete
		}
		return dto.EvaluationResponse{}, err
	}

	if evaluation.CompletedAt != nil {
		return dto.EvaluationResponse{}, ErrEvaluationCompleted
	}

	if !s.scoring.IsComplete(catalog.Questions, evaluation.Answers) {
		return dto.EvaluationResponse{}, ErrEvaluationIncomplete
	}

	summary := s.scoring.ComputeScore(catalog.Questions, evaluation.Answers)
	completedAt := time.Now()
	if err := s.evaluationRepo.Complete(projectID, completedAt, summary.Percentage); err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation, err = s.evaluationRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}

	return s.buildResponse(evaluation), nil
}

// checkProjectAccess verifies the project exists and the caller owns it
func (s *EvaluationService) checkProjectAccess(projectID string, userID string, isAdmin bool) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	if !isAdmin && project.UserID != userID {
		return fmt.Errorf("unauthorized: you don't have permission to access this project")
	}
	return nil
}

func (s *EvaluationService) buildResponse(evaluation models.Evaluation) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		Evaluation: evaluation,
		Categories: s.scoring.CategoryBreakdown(catalog.Questions, evaluation.Answers),
		IsComplete: s.scoring.IsComplete(catalog.Questions, evaluation.Answers),
	}
}

// answerFromRequest validates a submission and maps it onto the stored
// three-state shape: nil score = not applicable, otherwise 1..5.
func answerFromRequest(req dto.AnswerRequest) (models.Answer, error) {
	if _, ok := catalog.QuestionByID(req.QuestionID); !ok {
		return models.Answer{}, ErrUnknownQuestion
	}

	if req.NotApplicable {
		if req.Score != nil {
			return models.Answer{}, ErrAmbiguousAnswer
		}
	} else {
		if req.Score == nil {
			return models.Answer{}, ErrMissingScore
		}
		if *req.Score < 1 || *req.Score > catalog.MaxQuestionScore {
			return models.Answer{}, ErrInvalidScore
		}
	}

	return models.Answer{
		QuestionID: req.QuestionID,
		Score:      req.Score,
		Notes:      req.Notes,
		Images:     req.Images,
	}, nil
}
