package domain

import (
	"context"
	"fmt"
	"strings"
)

// FormKind identifies which of the site's forms a submission came from.
type FormKind string

const (
	KindContact               FormKind = "contact"
	KindQuote                 FormKind = "quote"
	KindInternship            FormKind = "internship"
	KindInternshipApplication FormKind = "internship-application"
	KindWorkApplication       FormKind = "work-application"
)

// FormSubmission is the request-scoped view of one submitted form.
// It is built from a bound request body, validated, relayed as two
// emails, and discarded; nothing outlives the request.
type FormSubmission struct {
	Kind   FormKind
	Fields map[string]string
}

// Field returns the trimmed value of a submitted field.
func (s *FormSubmission) Field(name string) string {
	return strings.TrimSpace(s.Fields[name])
}

// SubmissionResult is returned by the usecase on success; the delivery
// layer wraps it in the standard response envelope.
type SubmissionResult struct {
	Message string
	// Data maps the kind-specific keys (e.g. businessEmailId,
	// applicantEmailId) to the transport-assigned message ids.
	Data map[string]string
}

// SubmissionUsecase relays one form submission as a staff notification
// plus a submitter confirmation.
type SubmissionUsecase interface {
	Submit(ctx context.Context, sub *FormSubmission) (*SubmissionResult, error)
}

// RecipientRole selects the internal mailbox a form kind notifies.
type RecipientRole string

const (
	RoleBusiness RecipientRole = "business"
	RoleHR       RecipientRole = "hr"
)

// StaffField describes one row of the staff notification email.
type StaffField struct {
	Key   string
	Label string
	// Multiline values render in a message box instead of an inline row.
	Multiline bool
}

// FormSpec is the per-kind configuration that parameterizes the shared
// submission workflow: which fields are required, who gets notified,
// what the emails say, and which keys the response data uses.
type FormSpec struct {
	Kind           FormKind
	RequiredFields []string
	// EmailField / NameField name the submitter's address and display
	// name within Fields ("email" everywhere; "name" vs "fullName").
	EmailField string
	NameField  string
	// CheckSMTPConfig kinds verify outbound-mail settings exist before
	// touching the transport.
	CheckSMTPConfig bool
	Recipient       RecipientRole

	StaffTitle     string
	StaffSubject   string
	StaffFields    []StaffField
	ConfirmSubject string
	ConfirmBody    string

	SuccessMessage   string
	StaffDataKey     string
	SubmitterDataKey string
}

// MissingRequired returns the required fields that are absent or blank.
func (fs *FormSpec) MissingRequired(sub *FormSubmission) []string {
	var missing []string
	for _, f := range fs.RequiredFields {
		if sub.Field(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// ValidationError is a rejected submission: a required field is missing
// or the email address is malformed. Raised before any side effect.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConfigurationError means required outbound-mail settings are absent.
// Raised before any transport access.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "Email service not configured. Please contact us directly."
}

// TransportError wraps a failed dispatch to the mail relay.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Failed to send email"
}

func (e *TransportError) Unwrap() error { return e.Err }

// Specs returns the workflow configuration for every form kind the site
// exposes. The map is rebuilt per call so callers cannot mutate shared
// state.
func Specs() map[FormKind]*FormSpec {
	return map[FormKind]*FormSpec{
		KindContact: {
			Kind:            KindContact,
			RequiredFields:  []string{"name", "email", "phone", "message"},
			EmailField:      "email",
			NameField:       "name",
			CheckSMTPConfig: false,
			Recipient:       RoleBusiness,
			StaffTitle:      "New Contact Form Submission",
			StaffSubject:    "New Contact Enquiry from %s",
			StaffFields: []StaffField{
				{Key: "name", Label: "Name"},
				{Key: "email", Label: "Email"},
				{Key: "phone", Label: "Phone"},
				{Key: "message", Label: "Message", Multiline: true},
			},
			ConfirmSubject: "We received your message — Aakar Architects",
			ConfirmBody: "Thank you for reaching out to Aakar Architects. " +
				"We have received your message and a member of our team will " +
				"get back to you within one to two business days.",
			SuccessMessage:   "Contact email sent successfully",
			StaffDataKey:     "businessEmailId",
			SubmitterDataKey: "userEmailId",
		},
		KindQuote: {
			Kind:            KindQuote,
			RequiredFields:  []string{"projectType", "name", "email", "phone"},
			EmailField:      "email",
			NameField:       "name",
			CheckSMTPConfig: true,
			Recipient:       RoleBusiness,
			StaffTitle:      "New Quote Request",
			StaffSubject:    "New Quote Request from %s",
			StaffFields: []StaffField{
				{Key: "projectType", Label: "Project Type"},
				{Key: "name", Label: "Name"},
				{Key: "email", Label: "Email"},
				{Key: "phone", Label: "Phone"},
				{Key: "location", Label: "Location"},
				{Key: "plotSize", Label: "Plot Size"},
				{Key: "budget", Label: "Budget"},
				{Key: "timeline", Label: "Timeline"},
				{Key: "description", Label: "Project Description", Multiline: true},
			},
			ConfirmSubject: "We received your quote request — Aakar Architects",
			ConfirmBody: "Thank you for requesting a quote from Aakar Architects. " +
				"Our team is reviewing your project details and will share an " +
				"estimate with you shortly.",
			SuccessMessage:   "Quote email sent successfully",
			StaffDataKey:     "businessEmailId",
			SubmitterDataKey: "customerEmailId",
		},
		KindInternship: {
			Kind:            KindInternship,
			RequiredFields:  []string{"fullName", "email", "phone", "city"},
			EmailField:      "email",
			NameField:       "fullName",
			CheckSMTPConfig: false,
			Recipient:       RoleHR,
			StaffTitle:      "New Internship Application",
			StaffSubject:    "New Internship Application from %s",
			StaffFields: []StaffField{
				{Key: "fullName", Label: "Full Name"},
				{Key: "email", Label: "Email"},
				{Key: "phone", Label: "Phone"},
				{Key: "city", Label: "City"},
				{Key: "education", Label: "Education"},
				{Key: "startDate", Label: "Preferred Start Date"},
				{Key: "duration", Label: "Duration"},
				{Key: "interests", Label: "Areas of Interest"},
				{Key: "software", Label: "Software Skills"},
				{Key: "portfolio", Label: "Portfolio"},
				{Key: "resume", Label: "Resume"},
				{Key: "mode", Label: "Mode"},
				{Key: "references", Label: "References"},
				{Key: "motivation", Label: "Motivation", Multiline: true},
			},
			ConfirmSubject: "Your internship application — Aakar Architects",
			ConfirmBody: "Thank you for applying for an internship at Aakar " +
				"Architects. Our HR team has received your application and will " +
				"contact you if your profile matches an open batch.",
			SuccessMessage:   "Internship email sent successfully",
			StaffDataKey:     "hrEmailId",
			SubmitterDataKey: "applicantEmailId",
		},
		KindInternshipApplication: {
			Kind:            KindInternshipApplication,
			RequiredFields:  []string{"fullName", "email", "institution", "portfolioUrl"},
			EmailField:      "email",
			NameField:       "fullName",
			CheckSMTPConfig: false,
			Recipient:       RoleHR,
			StaffTitle:      "New Internship Application",
			StaffSubject:    "New Internship Application from %s",
			StaffFields: []StaffField{
				{Key: "fullName", Label: "Full Name"},
				{Key: "email", Label: "Email"},
				{Key: "institution", Label: "Institution"},
				{Key: "portfolioUrl", Label: "Portfolio URL"},
				{Key: "otherAttachments", Label: "Other Attachments"},
				{Key: "previousInternships", Label: "Previous Internships", Multiline: true},
				{Key: "internshipBatch", Label: "Internship Batch"},
				{Key: "startDate", Label: "Preferred Start Date"},
				{Key: "internshipDuration", Label: "Duration"},
			},
			ConfirmSubject: "Your internship application — Aakar Architects",
			ConfirmBody: "Thank you for applying for an internship at Aakar " +
				"Architects. Our HR team has received your application and will " +
				"contact you if your profile matches an open batch.",
			SuccessMessage:   "Internship application email sent successfully",
			StaffDataKey:     "hrEmailId",
			SubmitterDataKey: "applicantEmailId",
		},
		KindWorkApplication: {
			Kind:            KindWorkApplication,
			RequiredFields:  []string{"fullName", "email", "institution", "yearOfGraduation"},
			EmailField:      "email",
			NameField:       "fullName",
			CheckSMTPConfig: true,
			Recipient:       RoleHR,
			StaffTitle:      "New Work Application",
			StaffSubject:    "New Work Application from %s",
			StaffFields: []StaffField{
				{Key: "fullName", Label: "Full Name"},
				{Key: "email", Label: "Email"},
				{Key: "institution", Label: "Institution"},
				{Key: "yearOfGraduation", Label: "Year of Graduation"},
				{Key: "additionalQualifications", Label: "Additional Qualifications"},
				{Key: "previousWorkExperience", Label: "Previous Work Experience", Multiline: true},
				{Key: "portfolioLink", Label: "Portfolio Link"},
				{Key: "otherAttachments", Label: "Other Attachments"},
			},
			ConfirmSubject: "Your application — Aakar Architects",
			ConfirmBody: "Thank you for your interest in working with Aakar " +
				"Architects. Our HR team has received your application and will " +
				"reach out if your profile matches a current opening.",
			SuccessMessage:   "Work application email sent successfully",
			StaffDataKey:     "hrEmailId",
			SubmitterDataKey: "applicantEmailId",
		},
	}
}

// StaffSubjectFor formats the staff notification subject with the
// submitter's name.
func (fs *FormSpec) StaffSubjectFor(sub *FormSubmission) string {
	return fmt.Sprintf(fs.StaffSubject, sub.Field(fs.NameField))
}
