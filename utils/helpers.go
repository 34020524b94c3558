package utils

import "strings"

// SanitizeFileName reduces a project name to a safe file name fragment:
// alphanumerics survive, everything else collapses to underscores.
func SanitizeFileName(name string) string {
	var result strings.Builder
	lastUnderscore := false
	for _, char := range name {
		switch {
		case (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9'):
			result.WriteRune(char)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				result.WriteRune('_')
				lastUnderscore = true
			}
		}
	}

	finalName := strings.Trim(result.String(), "_")
	if finalName == "" {
		finalName = "report"
	}

	return finalName
}
