package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	token := EncodeOffsetToken(40)
	assert.NotEmpty(t, token, "Token should not be empty")

	offset, err := DecodeOffsetToken(token)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)

	// Zero offset is the first page and has no token
	assert.Empty(t, EncodeOffsetToken(0))
	offset, err = DecodeOffsetToken("")
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
}

func TestDecodeOffsetTokenError(t *testing.T) {
	_, err := DecodeOffsetToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeOffsetToken(base64.URLEncoding.EncodeToString([]byte("40")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeOffsetToken(base64.URLEncoding.EncodeToString([]byte("o|-3")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "offset parse")
}

func TestNextOffsetToken(t *testing.T) {
	// Full page: there may be more
	next, err := DecodeOffsetToken(NextOffsetToken(20, 20, 20))
	require.NoError(t, err)
	assert.Equal(t, 40, next)

	// Short page: end reached
	assert.Empty(t, NextOffsetToken(20, 20, 7))
	assert.Empty(t, NextOffsetToken(0, 0, 7))
}
