package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI renders binary content as a data URI string
// Example: "data:image/png;base64,iVBORw0..."
func EncodeDataURI(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURI splits a data URI into its content type and decoded payload
func ParseDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, "data:"), ";base64,", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", nil, fmt.Errorf("invalid data URI format")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 payload: %v", err)
	}

	return parts[0], data, nil
}
