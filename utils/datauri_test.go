package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

	uri := EncodeDataURI("image/png", payload)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", uri)

	contentType, data, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, payload, data)
}

func TestParseDataURIRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{"no data prefix", "image/png;base64,AAAA"},
		{"missing base64 marker", "data:image/png,AAAA"},
		{"empty content type", "data:;base64,AAAA"},
		{"invalid base64 payload", "data:image/png;base64,!!!!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseDataURI(tc.uri)
			assert.Error(t, err)
		})
	}
}
