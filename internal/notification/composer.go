package notification

//go:generate go run go.uber.org/mock/mockgen -source=./composer.go -destination=./mocks/composer_mock.go -package=mocks

import (
	"fmt"
	"html/template"
	"strings"
	"studio/config"
	"studio/internal/domains/request"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/shared/timezone"
)

type Kind string

const (
	KindReservationSubmitted Kind = "reservation_submitted"
	KindReservationReminder  Kind = "reservation_reminder"
	KindReservationStatus    Kind = "reservation_status"
	KindBorrowSubmitted      Kind = "borrow_submitted"
	KindBorrowReminder       Kind = "borrow_reminder"
	KindBorrowStatus         Kind = "borrow_status"
)

// Truncation budgets for the equipment list. The cut lengths are part of
// the template contract, not a rendering accident.
const (
	borrowReminderEquipmentLimit = 150
	borrowStatusEquipmentLimit   = 100
)

// Data is the entity snapshot a notification renders from. Reservation and
// borrow records populate their own subset; templates only read the fields
// that belong to their kind.
type Data struct {
	StudentName string
	StudentID   string
	Email       string
	Phone       string
	College     string
	Department  string

	Date               string
	FromTime           string
	ToTime             string
	Duration           string
	Supervisor         string
	StudioType         string
	ProjectTitle       string
	ProjectDescription string
	EquipmentNeeded    string

	EquipmentType string
	EquipmentName string
	BorrowDate    string
	ReturnDate    string
	Purpose       string

	Status request.Status
}

// Message is a transport-ready notification.
type Message struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type Composer interface {
	Compose(kind Kind, data Data) (Message, error)
}

type composerImpl struct {
	cfg       *config.Config
	templates map[Kind]*template.Template
}

func NewComposer(cfg *config.Config) Composer {
	funcs := template.FuncMap{
		"orNA":     orNA,
		"truncate": truncate,
	}

	parse := func(kind Kind, body string) *template.Template {
		return template.Must(template.New(string(kind)).Funcs(funcs).Parse(body))
	}

	return &composerImpl{
		cfg: cfg,
		templates: map[Kind]*template.Template{
			KindReservationSubmitted: parse(KindReservationSubmitted, reservationSubmittedTemplate),
			KindReservationReminder:  parse(KindReservationReminder, reservationReminderTemplate),
			KindReservationStatus:    parse(KindReservationStatus, statusTemplate),
			KindBorrowSubmitted:      parse(KindBorrowSubmitted, borrowSubmittedTemplate),
			KindBorrowReminder:       parse(KindBorrowReminder, borrowReminderTemplate),
			KindBorrowStatus:         parse(KindBorrowStatus, statusTemplate),
		},
	}
}

func (c *composerImpl) Compose(kind Kind, data Data) (Message, error) {
	tpl, ok := c.templates[kind]
	if !ok {
		return Message{}, failure.BadRequestFromString(fmt.Sprintf("unknown notification kind %q", kind)) //nolint:wrapcheck
	}

	recipient, err := c.recipient(kind, data)
	if err != nil {
		return Message{}, err
	}

	subject, err := subjectFor(kind, data)
	if err != nil {
		return Message{}, err
	}

	var body strings.Builder
	if err := tpl.Execute(&body, c.templateData(kind, data)); err != nil {
		return Message{}, fmt.Errorf("failed to render %s template: %w", kind, err)
	}

	return Message{
		Recipient: recipient,
		Subject:   subject,
		Body:      body.String(),
	}, nil
}

// recipient resolves the target address. Submission acks go to the studio
// admin; reminders and status notices go to the student and require the
// record to carry an email address.
func (c *composerImpl) recipient(kind Kind, data Data) (string, error) {
	switch kind {
	case KindReservationSubmitted, KindBorrowSubmitted:
		return c.cfg.Mail.AdminAddress, nil
	default:
		if data.Email == "" {
			return "", failure.BadRequestFromString("student email is required for this notification") //nolint:wrapcheck
		}

		return data.Email, nil
	}
}

func subjectFor(kind Kind, data Data) (string, error) {
	switch kind {
	case KindReservationSubmitted:
		return "New Studio Reservation - " + orNA(data.StudentName), nil
	case KindBorrowSubmitted:
		return "New Equipment Borrow Request - " + orNA(data.StudentName), nil
	case KindReservationReminder:
		return "⏰ Reminder: Studio Reservation on " + orNA(data.Date), nil
	case KindBorrowReminder:
		return "⏰ Reminder: Equipment Return Due on " + orNA(data.ReturnDate), nil
	case KindReservationStatus:
		switch data.Status {
		case request.StatusApproved:
			return "✅ Studio Reservation Approved - UAEU Media Studio", nil
		case request.StatusRejected:
			return "❌ Studio Reservation Update - UAEU Media Studio", nil
		}
	case KindBorrowStatus:
		switch data.Status {
		case request.StatusApproved:
			return "✅ Equipment Borrow Request Approved - UAEU Media Studio", nil
		case request.StatusRejected:
			return "❌ Equipment Borrow Request Update - UAEU Media Studio", nil
		}
	}

	return "", failure.BadRequestFromString("status notice requires an Approved or Rejected request") //nolint:wrapcheck
}

// statusView carries the badge and copy blocks the decision templates need
// on top of the raw snapshot.
type statusView struct {
	Data
	Badge          string
	BadgeColor     string
	Headline       string
	IsReservation  bool
	EquipmentShort string
	ReceivedAt     string
}

func (c *composerImpl) templateData(kind Kind, data Data) any {
	view := statusView{
		Data:          data,
		IsReservation: kind == KindReservationStatus,
		ReceivedAt:    timezone.Format(timezone.Now(), "January 2, 2006 at 3:04 PM"),
	}

	switch kind {
	case KindBorrowReminder:
		view.EquipmentShort = truncate(orNA(data.EquipmentName), borrowReminderEquipmentLimit)
	case KindBorrowStatus:
		view.EquipmentShort = truncate(orNA(data.EquipmentName), borrowStatusEquipmentLimit)
	}

	switch data.Status {
	case request.StatusApproved:
		view.Badge = "APPROVED"
		view.BadgeColor = "#4caf50"
		if kind == KindReservationStatus {
			view.Headline = "Great news! Your studio reservation request has been approved. Please arrive on time and bring your student ID."
		} else {
			view.Headline = "Great news! Your equipment borrow request has been approved. Please collect the equipment on the borrow date and return it by " + orNA(data.ReturnDate) + "."
		}
	case request.StatusRejected:
		view.Badge = "REJECTED"
		view.BadgeColor = "#f44336"
		if kind == KindReservationStatus {
			view.Headline = "We regret to inform you that your studio reservation request has been rejected. Please submit a new request with a different date or time, or contact the studio supervisor."
		} else {
			view.Headline = "We regret to inform you that your equipment borrow request has been rejected. Please submit a new request with different dates, or contact the studio supervisor."
		}
	}

	return view
}

func orNA(value string) string {
	if value == "" {
		return constant.NotAvailable
	}

	return value
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}

	return value[:limit] + "..."
}
