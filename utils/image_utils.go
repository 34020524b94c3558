package utils

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// IsDataURI reports whether an image reference is already a portable data URI
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// BuildDataURI wraps raw image bytes into a base64 data URI, sniffing the
// content type from the payload itself.
func BuildDataURI(content []byte) string {
	mimeType := http.DetectContentType(content)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))
}
