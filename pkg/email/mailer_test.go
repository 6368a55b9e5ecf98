package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIME(t *testing.T) {
	raw := string(buildMIME(&Message{
		To:      "studio@aakararchitects.example",
		From:    "noreply@aakararchitects.example",
		ReplyTo: "asha@example.com",
		Subject: "New Quote Request from Asha",
		HTML:    "<p>hello</p>",
	}, "<abc@aakararchitects.example>"))

	assert.Contains(t, raw, "From: noreply@aakararchitects.example\r\n")
	assert.Contains(t, raw, "To: studio@aakararchitects.example\r\n")
	assert.Contains(t, raw, "Reply-To: asha@example.com\r\n")
	assert.Contains(t, raw, "Message-ID: <abc@aakararchitects.example>\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n<p>hello</p>"))
}

func TestBuildMIMEOmitsEmptyReplyTo(t *testing.T) {
	raw := string(buildMIME(&Message{
		To:      "asha@example.com",
		From:    "noreply@aakararchitects.example",
		Subject: "We received your quote request",
		HTML:    "<p>hi</p>",
	}, "<abc@aakararchitects.example>"))

	assert.NotContains(t, raw, "Reply-To:")
}

func TestNewMessageIDUsesSenderDomain(t *testing.T) {
	m := &Mailer{host: "smtp.example.com"}

	id := m.newMessageID("noreply@aakararchitects.example")
	assert.True(t, strings.HasPrefix(id, "<"))
	assert.True(t, strings.HasSuffix(id, "@aakararchitects.example>"))

	// No usable sender domain: fall back to the relay host
	id = m.newMessageID("")
	assert.True(t, strings.HasSuffix(id, "@smtp.example.com>"))
}

func TestIsConfigured(t *testing.T) {
	m := &Mailer{host: "smtp.example.com", username: "relay", password: "secret"}
	assert.True(t, m.IsConfigured())

	m = &Mailer{host: "smtp.example.com", username: "relay"}
	assert.False(t, m.IsConfigured())
}
