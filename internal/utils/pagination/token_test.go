package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2026, 2, 15, 14, 30, 45, 123456789, time.UTC)
	id := "4b5f9a2e-1111-2222-3333-444455556666"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token)

	gotTime, gotID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing separator
	_, _, err = DecodeCursor("bm9zZXBhcmF0b3I=")
	assert.Error(t, err)
}
