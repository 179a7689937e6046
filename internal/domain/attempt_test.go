package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "Slot already booked", TruncateMessage("Slot already booked"))

	ascii := strings.Repeat("x", MaxBackendMessageLength+10)
	assert.Len(t, TruncateMessage(ascii), MaxBackendMessageLength)

	exact := strings.Repeat("я", MaxBackendMessageLength/2)
	assert.Equal(t, exact, TruncateMessage(exact))

	// Граница в 500 байт попадает на середину двухбайтового символа
	cyrillic := "a" + strings.Repeat("я", 300)
	got := TruncateMessage(cyrillic)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, MaxBackendMessageLength-1)
	assert.True(t, strings.HasPrefix(cyrillic, got))

	emoji := strings.Repeat("🎾", 200)
	got = TruncateMessage(emoji)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, 500)
}
