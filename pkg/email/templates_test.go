package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderStaffSkipsBlankFields(t *testing.T) {
	r := NewRenderer("Asia/Kolkata")

	html, err := r.RenderStaff(StaffEmailData{
		Title: "New Quote Request",
		Fields: []Field{
			{Label: "Name", Value: "Asha"},
			{Label: "Budget", Value: ""},
			{Label: "Project Description", Value: "Two floors, open plan", Multiline: true},
		},
		SubmittedAt: "01 Sep 2026, 02:45 PM IST",
	})

	assert.NoError(t, err)
	assert.Contains(t, html, "New Quote Request")
	assert.Contains(t, html, "Asha")
	assert.NotContains(t, html, "Budget")
	assert.Contains(t, html, `<div class="message-box">Two floors, open plan</div>`)
	assert.Contains(t, html, "01 Sep 2026, 02:45 PM IST")
}

func TestRenderStaffEscapesHTML(t *testing.T) {
	r := NewRenderer("Asia/Kolkata")

	html, err := r.RenderStaff(StaffEmailData{
		Title: "New Contact Form Submission",
		Fields: []Field{
			{Label: "Message", Value: "<img src=x onerror=alert(1)>", Multiline: true},
		},
		SubmittedAt: "01 Sep 2026, 02:45 PM IST",
	})

	assert.NoError(t, err)
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img")
}

func TestRenderConfirmation(t *testing.T) {
	r := NewRenderer("Asia/Kolkata")

	html, err := r.RenderConfirmation(ConfirmationData{
		Subject: "We received your message — Aakar Architects",
		Name:    "Ravi",
		Body:    "Thank you for reaching out.",
	})

	assert.NoError(t, err)
	assert.Contains(t, html, "Dear Ravi,")
	assert.Contains(t, html, "Thank you for reaching out.")
}

func TestTimestampUsesConfiguredZone(t *testing.T) {
	r := NewRenderer("Asia/Kolkata")

	// 09:00 UTC is 14:30 IST
	ts := r.Timestamp(time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "01 Sep 2026, 02:30 PM IST", ts)
}

func TestTimestampFallsBackToUTC(t *testing.T) {
	r := NewRenderer("Not/AZone")

	ts := r.Timestamp(time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasSuffix(ts, "UTC"), ts)
}
