package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	startDate := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 2, 9, 30, 15, 123456789, time.UTC)

	token := EncodeToken(startDate, createdAt)
	gotStart, gotCreated, err := DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotStart.Equal(startDate))
	assert.True(t, gotCreated.Equal(createdAt))
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, err := DecodeToken("not-%%-base64")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2026-07-14T00:00:00Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|2026-05-02T09:30:15Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}
