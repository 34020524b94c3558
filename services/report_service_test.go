package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sitecheck-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver resolves every reference to a canned data URI, except the
// ones listed in failing.
type stubResolver struct {
	failing map[string]bool
}

func (r stubResolver) Resolve(ref string) (string, error) {
	if r.failing[ref] {
		return "", errors.New("fetch failed")
	}
	return "data:image/png;base64,c3R1Yg==", nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var reportClock = time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC)

func testProject() models.Project {
	return models.Project{
		ID:             uuid.NewString(),
		Name:           "Harbor Tower Phase 2",
		Location:       "Dock Road 17",
		Description:    "Structural works, floors 4-9",
		Engineer:       "R. Almeida",
		Foreman:        "T. Costa",
		EvaluationDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func testEvaluation(projectID string, answers []models.Answer) models.Evaluation {
	completedAt := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	return models.Evaluation{
		ProjectID:   projectID,
		TotalScore:  100,
		MaxScore:    120,
		Percentage:  83.333333,
		CompletedAt: &completedAt,
		Answers:     answers,
	}
}

func TestCompileReportStructure(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "doc-01", Score: intPtr(3), Notes: "Permit copy missing on site", Images: []string{"photo-1.jpg"}},
		{QuestionID: "hk-01", Score: intPtr(5)},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	html := result.HTML

	// Header and metadata block
	assert.Contains(t, html, "SITE INSPECTION REPORT")
	assert.Contains(t, html, "Harbor Tower Phase 2")
	assert.Contains(t, html, "Dock Road 17")
	assert.Contains(t, html, "R. Almeida")
	assert.Contains(t, html, "T. Costa")
	assert.Contains(t, html, "10/06/2025") // evaluation date, day first
	assert.Contains(t, html, "12/06/2025") // generation date

	// Global score keeps three decimals, category scores two
	assert.Contains(t, html, ">83.333<")
	assert.Contains(t, html, `<td class="category-title">01.DOCUMENTATION AND LICENSES</td>`)

	// Scored question renders two decimals plus the content marker
	assert.Contains(t, html, "3.00")
	assert.Contains(t, html, `<span class="has-content">`)

	// Notes get their own row
	assert.Contains(t, html, "NOTE: Permit copy missing on site")

	// No logo uploaded: placeholder text renders instead of an img tag
	assert.Contains(t, html, "COMPANY<br>LOGO")

	// File name derives from the project name and generation date
	assert.Equal(t, "Inspection_Report_Harbor_Tower_Phase_2_2025-06-12.html", result.FileName)
	assert.Equal(t, reportClock, result.GeneratedAt)
	assert.Empty(t, result.ImageFailures)
}

func TestCompileReportIsReproducible(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	evaluation := testEvaluation(project.ID, []models.Answer{
		{QuestionID: "doc-01", Score: intPtr(4), Images: []string{"a.jpg", "b.jpg"}},
		{QuestionID: "el-02", Score: nil, Notes: "No temporary wiring on this floor"},
	})

	first, err := svc.Compile(project, evaluation)
	require.NoError(t, err)
	second, err := svc.Compile(project, evaluation)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.FileName, second.FileName)
}

func TestCompileReportPhotoAppendix(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "doc-01", Score: intPtr(3), Images: []string{"one.jpg"}},
		{QuestionID: "wh-02", Score: intPtr(5), Images: []string{"two.jpg", "three.jpg"}},
		{QuestionID: "el-01", Score: intPtr(1)},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	html := result.HTML
	assert.Contains(t, html, "PHOTOGRAPHIC REPORT AND OCCURRENCES")

	// One appendix entry per image, flattened across answers
	assert.Equal(t, 3, strings.Count(html, `class="photo-item"`))

	// Badge derives from the owning answer's score
	assert.Equal(t, 1, strings.Count(html, `status-badge attention`))
	assert.Equal(t, 2, strings.Count(html, `status-badge compliant`))

	// Entry label carries category index, category and question text
	assert.Contains(t, html, "01.DOCUMENTATION AND LICENSES &gt; WORK PERMITS AND LICENSES ARE AVAILABLE AND VALID ON SITE")
}

func TestCompileReportSingleAttentionEntry(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "mq-01", Score: intPtr(3), Images: []string{"guard.jpg"}},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(result.HTML, `class="photo-item"`))
	assert.Equal(t, 1, strings.Count(result.HTML, `status-badge attention`))
	assert.Contains(t, result.HTML, ">Attention<")
}

func TestCompileReportNotApplicableBadgeFallback(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "cp-03", Score: nil, Images: []string{"nets.jpg"}},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	// N/A answers with photos fall back to score 0 and the non-compliant badge
	assert.Contains(t, result.HTML, "status-badge non-compliant")
	assert.Contains(t, result.HTML, ">Non-Compliant<")
}

func TestCompileReportOmitsEmptyAppendix(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "doc-01", Score: intPtr(5)},
		{QuestionID: "hk-01", Score: nil, Notes: "Single storey, not applicable"},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	assert.NotContains(t, result.HTML, "PHOTOGRAPHIC REPORT AND OCCURRENCES")
	assert.NotContains(t, result.HTML, `class="photo-item"`)
}

func TestCompileReportImageFailureFallsBackToReference(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{failing: map[string]bool{"broken.jpg": true}}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "ppe-01", Score: intPtr(2), Images: []string{"broken.jpg", "fine.jpg"}},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	// The report still renders both entries; the broken one keeps its reference
	assert.Equal(t, 2, strings.Count(result.HTML, `class="photo-item"`))
	assert.Contains(t, result.HTML, `src="broken.jpg"`)
	assert.Contains(t, result.HTML, "data:image/png;base64,c3R1Yg==")

	require.Len(t, result.ImageFailures, 1)
	assert.Equal(t, "ppe-01", result.ImageFailures[0].QuestionID)
	assert.Equal(t, "broken.jpg", result.ImageFailures[0].Reference)
	assert.Equal(t, "fetch failed", result.ImageFailures[0].Error)
}

func TestCompileReportRendersUnansweredAndNA(t *testing.T) {
	svc := NewReportServiceWith(stubResolver{}, fixedClock(reportClock))

	project := testProject()
	answers := []models.Answer{
		{QuestionID: "doc-01", Score: nil},
	}
	result, err := svc.Compile(project, testEvaluation(project.ID, answers))
	require.NoError(t, err)

	// The N/A cell renders literally; the remaining questions render empty cells
	assert.Contains(t, result.HTML, ">N/A<")
}
