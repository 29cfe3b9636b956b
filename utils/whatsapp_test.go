package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+91 99999-99999", "Hello & welcome!")

	require.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "919999999999", q.Get("phone"))
	assert.Equal(t, "Hello & welcome!", q.Get("text"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919999999999", DigitsOnly("+91 (99999) 99999"))
	assert.Equal(t, "", DigitsOnly("whatsapp:"))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+919999999999", "9999999999", "+1 (555) 123-4567"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "+0123", "12345678901234567890"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
