package dto

// PlatformStatsResponse represents platform-wide inspection statistics for
// the admin dashboard.
type PlatformStatsResponse struct {
	Users             int64    `json:"users"`
	Projects          int64    `json:"projects"`
	CompletedProjects int64    `json:"completedProjects"`
	AverageFinalScore *float64 `json:"averageFinalScore"` // nil until at least one project completes
}
