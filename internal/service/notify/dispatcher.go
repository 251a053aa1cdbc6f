// Package notify sends the account lifecycle emails.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/config"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Payload carries the account data a notification is about.
type Payload struct {
	AccountID int64
	Name      string
	Email     string
}

// Result reports the outcome of one dispatch. Reason is empty on success.
type Result struct {
	Succeeded bool
	// Skipped is set when no delivery was attempted because mail is disabled.
	Skipped bool
	Reason  string
}

// ReasonMailDisabled is returned when no mail transport is configured.
const ReasonMailDisabled = "mail disabled"

// sender delivers a rendered message.
type sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type message struct {
	subject  string
	template string
}

var messages = map[domain.NotificationKind]message{
	domain.NotifyAdminNewRegistration: {
		subject:  "Nova solicitação de cadastro pendente!",
		template: "admin_new_registration.html",
	},
	domain.NotifyUserApproved: {
		subject:  "Bem-vindo à nossa plataforma!",
		template: "user_approved.html",
	},
}

// Dispatcher renders and sends notifications. It makes a single attempt per
// call and never returns an error; failures are reported in Result.
type Dispatcher struct {
	log            *slog.Logger
	sender         sender
	templates      *template.Template
	adminRecipient string
	reviewURL      string
	loginURL       string
}

// NewDispatcher creates a Dispatcher. A nil sender disables delivery.
func NewDispatcher(logger *slog.Logger, s sender, cfg config.MailConfig) *Dispatcher {
	return &Dispatcher{
		log:            logger.With("service", "notify"),
		sender:         s,
		templates:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
		adminRecipient: cfg.AdminRecipient,
		reviewURL:      cfg.ReviewURL,
		loginURL:       cfg.LoginURL,
	}
}

// Notify sends one notification of kind about payload.
func (d *Dispatcher) Notify(ctx context.Context, kind domain.NotificationKind, payload Payload) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			d.log.ErrorContext(ctx, "notification panicked", slog.String("kind", string(kind)), slog.Any("panic", r))
			res = Result{Reason: fmt.Sprintf("panic: %v", r)}
		}
	}()

	if d.sender == nil {
		return Result{Skipped: true, Reason: ReasonMailDisabled}
	}

	msg, ok := messages[kind]
	if !ok {
		return Result{Reason: fmt.Sprintf("unknown notification kind %q", kind)}
	}

	to := payload.Email
	if kind == domain.NotifyAdminNewRegistration {
		to = d.adminRecipient
	}
	if to == "" {
		return Result{Reason: "no recipient"}
	}

	var body bytes.Buffer
	err := d.templates.ExecuteTemplate(&body, msg.template, struct {
		Payload
		ReviewURL string
		LoginURL  string
	}{payload, d.reviewURL, d.loginURL})
	if err != nil {
		d.log.ErrorContext(ctx, "render notification", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		return Result{Reason: "render: " + err.Error()}
	}

	if err := d.sender.Send(ctx, to, msg.subject, body.String()); err != nil {
		d.log.WarnContext(ctx, "notification not delivered",
			slog.String("kind", string(kind)),
			slog.Int64("account_id", payload.AccountID),
			slog.String("error", err.Error()),
		)
		return Result{Reason: err.Error()}
	}

	d.log.InfoContext(ctx, "notification sent",
		slog.String("kind", string(kind)),
		slog.Int64("account_id", payload.AccountID),
	)
	return Result{Succeeded: true}
}
