package email

import (
	"bytes"
	"html/template"
	"time"
)

// staffTemplate is the HTML layout for staff/HR notification emails.
// Every form kind renders through it with its own title and field rows;
// user-supplied values are escaped by html/template.
const staffTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #8b6f47; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #8b6f47; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            {{range .Fields}}{{if .Value}}
            <div class="field">
                <div class="label">{{.Label}}:</div>
                {{if .Multiline}}<div class="message-box">{{.Value}}</div>{{else}}<div class="value">{{.Value}}</div>{{end}}
            </div>
            {{end}}{{end}}
        </div>
        <div class="footer">
            <p>Submitted on {{.SubmittedAt}} via the Aakar Architects website.</p>
        </div>
    </div>
</body>
</html>`

// confirmationTemplate is the layout for the acknowledgment sent back
// to the submitter, personalized only by name.
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #8b6f47; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Aakar Architects</h1>
        </div>
        <div class="content">
            <p>Dear {{.Name}},</p>
            <p>{{.Body}}</p>
            <p>Warm regards,<br>Team Aakar Architects</p>
        </div>
        <div class="footer">
            <p>This is an automated acknowledgment. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`

// Field is one labelled value in a staff notification. Blank values are
// skipped when rendering.
type Field struct {
	Label     string
	Value     string
	Multiline bool
}

// StaffEmailData feeds the staff notification template.
type StaffEmailData struct {
	Title       string
	Fields      []Field
	SubmittedAt string
}

// ConfirmationData feeds the submitter acknowledgment template.
type ConfirmationData struct {
	Subject string
	Name    string
	Body    string
}

// Renderer renders email bodies and formats submission timestamps in
// the site's configured timezone.
type Renderer struct {
	staff   *template.Template
	confirm *template.Template
	loc     *time.Location
}

// NewRenderer builds the shared template renderer. An unknown timezone
// name falls back to UTC.
func NewRenderer(timezone string) *Renderer {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Renderer{
		staff:   template.Must(template.New("staff").Parse(staffTemplate)),
		confirm: template.Must(template.New("confirmation").Parse(confirmationTemplate)),
		loc:     loc,
	}
}

// Timestamp formats a submission time for display in staff emails,
// e.g. "01 Sep 2026, 02:45 PM IST".
func (r *Renderer) Timestamp(t time.Time) string {
	return t.In(r.loc).Format("02 Jan 2006, 03:04 PM MST")
}

// RenderStaff produces the staff notification body.
func (r *Renderer) RenderStaff(data StaffEmailData) (string, error) {
	var buf bytes.Buffer
	if err := r.staff.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderConfirmation produces the submitter acknowledgment body.
func (r *Renderer) RenderConfirmation(data ConfirmationData) (string, error) {
	var buf bytes.Buffer
	if err := r.confirm.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
