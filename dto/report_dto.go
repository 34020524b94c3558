package dto

import "time"

// ImageFailure records one image reference that could not be inlined while
// compiling a report. The report still embeds the original reference.
type ImageFailure struct {
	QuestionID string `json:"questionId"`
	Reference  string `json:"reference"`
	Error      string `json:"error"`
}

// ReportResult is a compiled inspection report plus its compilation log.
type ReportResult struct {
	HTML          string         `json:"html"`
	FileName      string         `json:"fileName"`
	GeneratedAt   time.Time      `json:"generatedAt"`
	ImageFailures []ImageFailure `json:"imageFailures,omitempty"`
}
