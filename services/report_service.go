package services

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sitecheck-simple/catalog"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
	"github.com/sitecheck-simple/utils"
)

// ImageResolver turns an opaque image reference (data URI, URL or local
// path) into a self-contained data URI that survives sharing the report.
type ImageResolver interface {
	Resolve(ref string) (string, error)
}

// ReportService compiles a project and its evaluation into a single
// self-contained HTML document suitable for screen viewing and printing.
type ReportService struct {
	scoring  *ScoringService
	resolver ImageResolver
	now      func() time.Time
}

// NewReportService creates a report service with the default image resolver
func NewReportService() *ReportService {
	return NewReportServiceWith(defaultImageResolver{}, time.Now)
}

// NewReportServiceWith creates a report service with an explicit resolver
// and clock. The clock is the only non-deterministic input: compiling the
// same project and evaluation twice differs only in the generation
// timestamps.
func NewReportServiceWith(resolver ImageResolver, now func() time.Time) *ReportService {
	return &ReportService{
		scoring:  NewScoringService(),
		resolver: resolver,
		now:      now,
	}
}

// Compile renders the inspection report. The caller is expected to have
// verified the evaluation is complete; partial data is rendered as-is.
// Per-image resolution failures never abort the report: the original
// reference is embedded instead and the failure is recorded on the result.
func (s *ReportService) Compile(project models.Project, evaluation models.Evaluation) (dto.ReportResult, error) {
	generatedAt := s.now()

	data := reportData{
		Project:        project,
		EvaluationDate: utils.FormatDate(project.EvaluationDate),
		GeneratedDate:  utils.FormatDate(generatedAt),
		GeneratedAt:    utils.FormatDateTime(generatedAt),
		Percentage:     fmt.Sprintf("%.3f", evaluation.Percentage),
	}
	if project.Logo != nil {
		data.Logo = template.URL(*project.Logo)
	}
	if project.ClientLogo != nil {
		data.ClientLogo = template.URL(*project.ClientLogo)
	}

	byQuestion := dedupeAnswers(evaluation.Answers)
	breakdown := s.scoring.CategoryBreakdown(catalog.Questions, evaluation.Answers)

	for _, category := range breakdown {
		row := reportCategory{
			Label: fmt.Sprintf("%02d.%s", category.Index, strings.ToUpper(category.Name)),
			Score: fmt.Sprintf("%.2f", category.Percentage),
		}
		for _, question := range catalog.QuestionsByCategory(category.Key) {
			answer, answered := byQuestion[question.ID]
			row.Questions = append(row.Questions, reportQuestion{
				Text:      strings.ToUpper(question.Question),
				Score:     scoreDisplay(answer, answered),
				HasMarker: answered && (answer.HasNotes() || answer.HasImages()),
				Notes:     answer.Notes,
			})
		}
		data.Categories = append(data.Categories, row)
	}

	photos, failures := s.buildPhotoAppendix(evaluation.Answers, generatedAt)
	data.Photos = photos

	var out strings.Builder
	if err := reportTemplate.Execute(&out, data); err != nil {
		return dto.ReportResult{}, fmt.Errorf("failed to compile report: %w", err)
	}

	return dto.ReportResult{
		HTML:          out.String(),
		FileName:      reportFileName(project.Name, generatedAt),
		GeneratedAt:   generatedAt,
		ImageFailures: failures,
	}, nil
}

// buildPhotoAppendix flattens every answer's images, in answer order then
// capture order, into appendix entries. Resolution errors are captured per
// image and the original reference is kept.
func (s *ReportService) buildPhotoAppendix(answers []models.Answer, generatedAt time.Time) ([]reportPhoto, []dto.ImageFailure) {
	var photos []reportPhoto
	var failures []dto.ImageFailure

	for _, answer := range answers {
		if !answer.HasImages() {
			continue
		}

		question, ok := catalog.QuestionByID(answer.QuestionID)
		if !ok {
			continue
		}
		category, ok := catalog.CategoryByKey(question.Category)
		if !ok {
			continue
		}
		title := fmt.Sprintf("%02d.%s > %s",
			catalog.CategoryIndex(category.Key)+1,
			strings.ToUpper(category.Name),
			strings.ToUpper(question.Question))

		// TODO(product): an N/A answer with photos falls through to the
		// 0-score branch and gets the non-compliant badge; confirm whether
		// a neutral badge is wanted instead.
		score := 0
		if answer.Score != nil {
			score = *answer.Score
		}
		badge := badgeForScore(score)

		for _, ref := range answer.Images {
			src, err := s.resolver.Resolve(ref)
			if err != nil {
				log.Printf("⚠️ Failed to inline image %q for question %s: %v", ref, answer.QuestionID, err)
				failures = append(failures, dto.ImageFailure{
					QuestionID: answer.QuestionID,
					Reference:  ref,
					Error:      err.Error(),
				})
				src = ref
			}

			photos = append(photos, reportPhoto{
				Title:     title,
				Image:     template.URL(src),
				Badge:     badge,
				Timestamp: utils.FormatDateTime(generatedAt),
				Notes:     answer.Notes,
			})
		}
	}

	return photos, failures
}

// badgeForScore maps a numeric score onto the three-tier compliance badge
func badgeForScore(score int) reportBadge {
	switch {
	case score >= 4:
		return reportBadge{Class: "compliant", Label: "Compliant"}
	case score >= 2:
		return reportBadge{Class: "attention", Label: "Attention"}
	default:
		return reportBadge{Class: "non-compliant", Label: "Non-Compliant"}
	}
}

// scoreDisplay formats a question's score cell: N/A for not-applicable
// answers, two decimals for scored ones, empty for unanswered questions.
func scoreDisplay(answer models.Answer, answered bool) string {
	if !answered {
		return ""
	}
	if answer.IsNotApplicable() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(*answer.Score))
}

// reportFileName builds a shareable file name from the project name and the
// generation date.
func reportFileName(projectName string, generatedAt time.Time) string {
	return fmt.Sprintf("Inspection_Report_%s_%s.html",
		utils.SanitizeFileName(projectName),
		generatedAt.Format("2006-01-02"))
}

// defaultImageResolver handles the three reference shapes the mobile client
// produces: already-portable data URIs, remote URLs, and local file paths.
type defaultImageResolver struct{}

var imageHTTPClient = &http.Client{Timeout: 15 * time.Second}

// maxInlineImageSize caps a single embedded image at 10 MiB
const maxInlineImageSize = 10 << 20

func (defaultImageResolver) Resolve(ref string) (string, error) {
	if utils.IsDataURI(ref) {
		return ref, nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		resp, err := imageHTTPClient.Get(ref)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status %d fetching image", resp.StatusCode)
		}
		content, err := io.ReadAll(io.LimitReader(resp.Body, maxInlineImageSize))
		if err != nil {
			return "", err
		}
		return utils.BuildDataURI(content), nil
	}

	content, err := os.ReadFile(ref)
	if err != nil {
		return "", err
	}
	if len(content) > maxInlineImageSize {
		return "", fmt.Errorf("image exceeds inline size limit")
	}
	return utils.BuildDataURI(content), nil
}

type reportData struct {
	Project        models.Project
	Logo           template.URL
	ClientLogo     template.URL
	EvaluationDate string
	GeneratedDate  string
	GeneratedAt    string
	Percentage     string
	Categories     []reportCategory
	Photos         []reportPhoto
}

type reportCategory struct {
	Label     string
	Score     string
	Questions []reportQuestion
}

type reportQuestion struct {
	Text      string
	Score     string
	HasMarker bool
	Notes     string
}

type reportBadge struct {
	Class string
	Label string
}

type reportPhoto struct {
	Title     string
	Image     template.URL
	Badge     reportBadge
	Timestamp string
	Notes     string
}
