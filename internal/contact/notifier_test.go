package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thegreatvegan/Qura/internal/config"
)

func TestRenderNotification(t *testing.T) {
	s := Submission{Name: "Ada <Lovelace>", Email: "ada@example.com", Company: "A&B Labs", Message: "Hello"}

	note, err := RenderNotification(s, "ref-42")
	require.NoError(t, err)

	assert.Equal(t, "New enquiry from Ada <Lovelace> (A&B Labs)", note.Subject)
	assert.Contains(t, note.Text, "Email:        ada@example.com")
	assert.Contains(t, note.Text, "Reference:    ref-42")
	assert.Contains(t, note.Text, "\nHello\n")
}

func TestRenderNotification_NoMessage(t *testing.T) {
	note, err := RenderNotification(validSubmissionWithoutMessage(), "r")
	require.NoError(t, err)
	assert.Contains(t, note.Text, "(no message)")
}

func validSubmissionWithoutMessage() Submission {
	s := validSubmission()
	s.Message = ""
	return s
}

func TestNewMailgunNotifier_RequiresConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.NotifyConfig
		want bool
	}{
		{"disabled", config.NotifyConfig{MailgunDomain: "mg.qura.tech", MailgunAPIKey: "key", ToEmail: "a@b.c"}, false},
		{"missing key", config.NotifyConfig{Enabled: true, MailgunDomain: "mg.qura.tech", ToEmail: "a@b.c"}, false},
		{"configured", config.NotifyConfig{Enabled: true, MailgunDomain: "mg.qura.tech", MailgunAPIKey: "key", ToEmail: "a@b.c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewMailgunNotifier(tt.cfg, testLogger())
			assert.Equal(t, tt.want, n != nil)
		})
	}
}

func TestNewNotifier_FallsBackToNoop(t *testing.T) {
	n := NewNotifier(&config.Config{}, testLogger())

	_, isNoop := n.(noopNotifier)
	assert.True(t, isNoop)
	assert.NoError(t, n.Notify(context.Background(), validSubmission(), "ref"))
}
