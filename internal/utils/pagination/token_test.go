package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2024-03-01T00:00:00Z", "entry-42"}

	token := EncodeMultiFieldToken(fields...)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)
}

func TestDecodeMultiFieldToken_InvalidBase64(t *testing.T) {
	_, err := DecodeMultiFieldToken("not-valid-base64!!!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestEncodeMultiFieldToken_SingleField(t *testing.T) {
	token := EncodeMultiFieldToken("only-one")
	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"only-one"}, decoded)
}
