package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"nexus/internal/adapters/email"
	"nexus/internal/application/validate"
	domain "nexus/internal/domain/inquiry"
)

// InquiryStore defines the store interface needed by SubmitContact.
type InquiryStore interface {
	Save(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error)
}

// SubmitContactCommand holds the input for a contact-form submission.
// PRE: fields come straight from the public form and are untrusted.
// POST: The inquiry is persisted and the site owners are notified.
type SubmitContactCommand struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// SubmitContactResult holds the outcome of a successful submission.
type SubmitContactResult struct {
	InquiryID string
	FieldErrs validate.Errors
}

// SubmitContactDeps are the external dependencies for this orchestrator.
type SubmitContactDeps struct {
	InquiryStore InquiryStore
	Sender       email.Sender
	NotifyTo     string // destination for the notification email, empty disables it
}

// ErrContactValidation marks a submission blocked by field validation; the
// result's FieldErrs carries the per-field messages.
var ErrContactValidation = fmt.Errorf("contact submission failed validation")

// ExecuteSubmitContact validates, persists, and notifies about a contact
// inquiry. The notification email is best-effort: a send failure is logged
// but does not fail the submission, since the inquiry is already stored.
func ExecuteSubmitContact(ctx context.Context, cmd SubmitContactCommand, deps SubmitContactDeps) (SubmitContactResult, error) {
	errs := validate.Errors{}
	validate.Required(errs, "name", cmd.Name)
	validate.Required(errs, "email", cmd.Email)
	validate.Email(errs, "email", cmd.Email)
	validate.Required(errs, "body", cmd.Body)
	validate.MaxLen(errs, "body", cmd.Body, 5000)
	if !errs.Ok() {
		return SubmitContactResult{FieldErrs: errs}, ErrContactValidation
	}

	inq := domain.Inquiry{
		Name:    strings.TrimSpace(cmd.Name),
		Email:   strings.TrimSpace(cmd.Email),
		Subject: strings.TrimSpace(cmd.Subject),
		Body:    strings.TrimSpace(cmd.Body),
	}
	saved, err := deps.InquiryStore.Save(ctx, inq)
	if err != nil {
		slog.Error("contact_save_failed", "error", err.Error())
		return SubmitContactResult{}, fmt.Errorf("failed to save inquiry: %w", err)
	}

	if deps.Sender != nil && deps.NotifyTo != "" {
		req := email.SendRequest{
			To:      []string{deps.NotifyTo},
			Subject: notificationSubject(saved),
			HTML:    notificationHTML(saved),
			ReplyTo: saved.Email,
		}
		if _, err := deps.Sender.Send(ctx, req); err != nil {
			slog.Warn("contact_notify_failed", "error", err.Error(), "inquiry_id", saved.ID)
		}
	}

	slog.Info("contact_submitted", "inquiry_id", saved.ID)
	return SubmitContactResult{InquiryID: saved.ID}, nil
}

func notificationSubject(inq domain.Inquiry) string {
	if inq.Subject != "" {
		return "Contact form: " + inq.Subject
	}
	return "Contact form: new inquiry"
}

func notificationHTML(inq domain.Inquiry) string {
	var sb strings.Builder
	sb.WriteString("<h2>New contact inquiry</h2>")
	sb.WriteString(fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p>",
		html.EscapeString(inq.Name), html.EscapeString(inq.Email)))
	if inq.Subject != "" {
		sb.WriteString(fmt.Sprintf("<p><strong>Subject:</strong> %s</p>", html.EscapeString(inq.Subject)))
	}
	sb.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(inq.Body)))
	sb.WriteString(fmt.Sprintf("<p><em>Received %s</em></p>", time.Now().UTC().Format(time.RFC3339)))
	return sb.String()
}
