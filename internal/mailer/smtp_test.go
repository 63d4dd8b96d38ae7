package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderActivationTemplate(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", "587", "", "", "noreply@example.com", "Signup", "Activate your account", "https://example.com/activate")

	body, err := m.renderActivationTemplate("https://example.com/activate?token=abc123", "abc123")
	require.NoError(t, err)

	assert.Contains(t, body, `href="https://example.com/activate?token=abc123"`)
	assert.Contains(t, body, "Token: abc123")
}

func TestStub_RecordsMessages(t *testing.T) {
	s := NewStub()

	require.NoError(t, s.SendActivationEmail("user1@mail.com", "abcdef0123456789"))

	msg, ok := s.LastMessage()
	require.True(t, ok)
	assert.Equal(t, "user1@mail.com", msg.To)
	assert.Equal(t, "abcdef0123456789", msg.Token)
	assert.Len(t, s.Sent(), 1)
}
