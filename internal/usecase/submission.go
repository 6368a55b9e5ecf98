package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-studio-backend/config"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type submissionUsecase struct {
	cfg      *config.Config
	mailer   email.Sender
	renderer *email.Renderer
	specs    map[domain.FormKind]*domain.FormSpec
	validate *validator.Validate
}

// NewSubmissionUsecase creates the shared submission workflow. All five
// form kinds run through the same pipeline, parameterized by their
// FormSpec: validate, optionally check mail configuration, render and
// send the staff notification, then render and send the confirmation.
func NewSubmissionUsecase(cfg *config.Config, mailer email.Sender, renderer *email.Renderer, validate *validator.Validate) domain.SubmissionUsecase {
	return &submissionUsecase{
		cfg:      cfg,
		mailer:   mailer,
		renderer: renderer,
		specs:    domain.Specs(),
		validate: validate,
	}
}

// Submit relays one form submission as two emails: staff first, then
// the submitter confirmation. The staff send strictly precedes the
// confirmation send; if the confirmation fails the whole request fails
// even though the staff copy already went out. There is no rollback,
// no retry and no deduplication.
func (uc *submissionUsecase) Submit(ctx context.Context, sub *domain.FormSubmission) (*domain.SubmissionResult, error) {
	spec, ok := uc.specs[sub.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown form kind: %s", sub.Kind)
	}

	// 1. Required fields. Rejected before any side effect.
	if missing := spec.MissingRequired(sub); len(missing) > 0 {
		return nil, &domain.ValidationError{
			Reason: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}

	// 2. Email syntax, same pattern the frontend applies.
	submitterEmail := sub.Field(spec.EmailField)
	if err := uc.validate.Var(submitterEmail, "form_email"); err != nil {
		return nil, &domain.ValidationError{Reason: "Invalid email format"}
	}

	// 3. Outbound-mail configuration, for the kinds that check it.
	// Setting names are logged; values never are.
	if spec.CheckSMTPConfig {
		if missing := uc.cfg.MissingSMTPSettings(); len(missing) > 0 {
			logger.Log.Error("email service not configured",
				"kind", string(sub.Kind),
				"missing", strings.Join(missing, ", "))
			return nil, &domain.ConfigurationError{Missing: missing}
		}
	}

	submitterName := sub.Field(spec.NameField)

	// 4-6. Staff notification. A failure here means the confirmation
	// is never attempted.
	staffBody, err := uc.renderer.RenderStaff(email.StaffEmailData{
		Title:       spec.StaffTitle,
		Fields:      uc.staffFields(spec, sub),
		SubmittedAt: uc.renderer.Timestamp(time.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render staff email: %w", err)
	}

	staffID, err := uc.mailer.Send(ctx, &email.Message{
		To:      uc.recipient(spec),
		From:    uc.cfg.SMTPFrom,
		ReplyTo: submitterEmail,
		Subject: spec.StaffSubjectFor(sub),
		HTML:    staffBody,
	})
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	// 7-8. Submitter confirmation. The staff email is already out; a
	// failure here surfaces as a full failure and neither id is
	// returned to the caller.
	confirmBody, err := uc.renderer.RenderConfirmation(email.ConfirmationData{
		Subject: spec.ConfirmSubject,
		Name:    submitterName,
		Body:    spec.ConfirmBody,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render confirmation email: %w", err)
	}

	confirmID, err := uc.mailer.Send(ctx, &email.Message{
		To:      submitterEmail,
		From:    uc.cfg.SMTPFrom,
		Subject: spec.ConfirmSubject,
		HTML:    confirmBody,
	})
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	return &domain.SubmissionResult{
		Message: spec.SuccessMessage,
		Data: map[string]string{
			spec.StaffDataKey:     staffID,
			spec.SubmitterDataKey: confirmID,
		},
	}, nil
}

// recipient resolves the internal mailbox for a form kind.
func (uc *submissionUsecase) recipient(spec *domain.FormSpec) string {
	if spec.Recipient == domain.RoleHR {
		return uc.cfg.HREmail
	}
	return uc.cfg.BusinessEmail
}

// staffFields maps the kind's field layout onto the submitted values.
func (uc *submissionUsecase) staffFields(spec *domain.FormSpec, sub *domain.FormSubmission) []email.Field {
	fields := make([]email.Field, 0, len(spec.StaffFields))
	for _, sf := range spec.StaffFields {
		fields = append(fields, email.Field{
			Label:     sf.Label,
			Value:     sub.Field(sf.Key),
			Multiline: sf.Multiline,
		})
	}
	return fields
}
