package utils

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Tower", "Tower"},
		{"spaces collapse to underscores", "Harbor Tower Phase 2", "Harbor_Tower_Phase_2"},
		{"symbols collapse", "Obra #12 / Sul", "Obra_12_Sul"},
		{"leading and trailing junk trimmed", "  (demo)  ", "demo"},
		{"nothing left falls back", "///", "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestBuildDataURI(t *testing.T) {
	// Minimal PNG header so content sniffing identifies the type
	content := []byte("\x89PNG\r\n\x1a\nrest-of-image")

	uri := BuildDataURI(content)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,AAAA"))
	assert.False(t, IsDataURI("https://example.com/a.png"))
	assert.False(t, IsDataURI("/var/photos/a.png"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 6, 3, 17, 45, 9, 0, time.UTC)
	assert.Equal(t, "03/06/2025", FormatDate(ts))
	assert.Equal(t, "03/06/2025 17:45:09", FormatDateTime(ts))
}
