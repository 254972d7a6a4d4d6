package notification_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"studio/config"
	"studio/internal/domains/request"
	"studio/internal/notification"
	"studio/shared/failure"
)

func newComposer() notification.Composer {
	cfg := &config.Config{}
	cfg.Mail.Sender = "studio@uaeu.ac.ae"
	cfg.Mail.AdminAddress = "studio-admin@uaeu.ac.ae"

	return notification.NewComposer(cfg)
}

func reservationData() notification.Data {
	return notification.Data{
		StudentName:        "Sara Al Marri",
		StudentID:          "202212345",
		Email:              "sara@uaeu.ac.ae",
		Phone:              "0501234567",
		College:            "CHSS",
		Department:         "Media",
		Date:               "2026-09-15",
		FromTime:           "10:00",
		ToTime:             "12:00",
		Duration:           "2 hours",
		Supervisor:         "Dr. Ahmed",
		StudioType:         "Podcast Studio",
		ProjectTitle:       "Campus Voices",
		ProjectDescription: "Weekly podcast pilot",
		Status:             request.StatusPending,
	}
}

func borrowData() notification.Data {
	return notification.Data{
		StudentName:   "Omar Al Ketbi",
		StudentID:     "202298765",
		Email:         "omar@uaeu.ac.ae",
		College:       "CHSS",
		Department:    "Media",
		EquipmentType: "Camera",
		EquipmentName: "Sony FX3, tripod, lav mic",
		BorrowDate:    "2026-09-20",
		ReturnDate:    "2026-09-22",
		Purpose:       "Documentary shoot",
		Status:        request.StatusPending,
	}
}

func TestComposer_SubmittedGoesToAdmin(t *testing.T) {
	composer := newComposer()

	tests := []struct {
		name        string
		kind        notification.Kind
		data        notification.Data
		wantSubject string
	}{
		{
			name:        "reservation submission",
			kind:        notification.KindReservationSubmitted,
			data:        reservationData(),
			wantSubject: "New Studio Reservation - Sara Al Marri",
		},
		{
			name:        "borrow submission",
			kind:        notification.KindBorrowSubmitted,
			data:        borrowData(),
			wantSubject: "New Equipment Borrow Request - Omar Al Ketbi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := composer.Compose(tt.kind, tt.data)

			assert.NoError(t, err)
			assert.Equal(t, "studio-admin@uaeu.ac.ae", msg.Recipient)
			assert.Equal(t, tt.wantSubject, msg.Subject)
			assert.Contains(t, msg.Body, tt.data.StudentName)
			assert.Contains(t, msg.Body, tt.data.StudentID)
		})
	}
}

func TestComposer_ReminderGoesToStudent(t *testing.T) {
	composer := newComposer()

	msg, err := composer.Compose(notification.KindReservationReminder, reservationData())

	assert.NoError(t, err)
	assert.Equal(t, "sara@uaeu.ac.ae", msg.Recipient)
	assert.Equal(t, "⏰ Reminder: Studio Reservation on 2026-09-15", msg.Subject)
	assert.Contains(t, msg.Body, "Podcast Studio")
}

func TestComposer_ReminderRequiresStudentEmail(t *testing.T) {
	composer := newComposer()

	data := reservationData()
	data.Email = ""

	_, err := composer.Compose(notification.KindReservationReminder, data)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestComposer_StatusNotice(t *testing.T) {
	composer := newComposer()

	tests := []struct {
		name        string
		kind        notification.Kind
		data        notification.Data
		status      request.Status
		wantSubject string
		wantBadge   string
		wantColor   string
	}{
		{
			name:        "reservation approved",
			kind:        notification.KindReservationStatus,
			data:        reservationData(),
			status:      request.StatusApproved,
			wantSubject: "✅ Studio Reservation Approved - UAEU Media Studio",
			wantBadge:   "APPROVED",
			wantColor:   "#4caf50",
		},
		{
			name:        "reservation rejected",
			kind:        notification.KindReservationStatus,
			data:        reservationData(),
			status:      request.StatusRejected,
			wantSubject: "❌ Studio Reservation Update - UAEU Media Studio",
			wantBadge:   "REJECTED",
			wantColor:   "#f44336",
		},
		{
			name:        "borrow approved",
			kind:        notification.KindBorrowStatus,
			data:        borrowData(),
			status:      request.StatusApproved,
			wantSubject: "✅ Equipment Borrow Request Approved - UAEU Media Studio",
			wantBadge:   "APPROVED",
			wantColor:   "#4caf50",
		},
		{
			name:        "borrow rejected",
			kind:        notification.KindBorrowStatus,
			data:        borrowData(),
			status:      request.StatusRejected,
			wantSubject: "❌ Equipment Borrow Request Update - UAEU Media Studio",
			wantBadge:   "REJECTED",
			wantColor:   "#f44336",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data
			data.Status = tt.status

			msg, err := composer.Compose(tt.kind, data)

			assert.NoError(t, err)
			assert.Equal(t, data.Email, msg.Recipient)
			assert.Equal(t, tt.wantSubject, msg.Subject)
			assert.Contains(t, msg.Body, tt.wantBadge)
			assert.Contains(t, msg.Body, tt.wantColor)
		})
	}
}

func TestComposer_StatusNoticeRejectsPending(t *testing.T) {
	composer := newComposer()

	_, err := composer.Compose(notification.KindReservationStatus, reservationData())

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestComposer_BorrowEquipmentTruncation(t *testing.T) {
	composer := newComposer()

	long := strings.Repeat("a", 180)

	tests := []struct {
		name      string
		kind      notification.Kind
		equipment string
		status    request.Status
		wantFull  string
		wantOver  string
	}{
		{
			name:      "reminder keeps short list intact",
			kind:      notification.KindBorrowReminder,
			equipment: "Sony FX3",
			status:    request.StatusPending,
			wantFull:  "Sony FX3",
		},
		{
			name:      "reminder cuts at 150 and marks the cut",
			kind:      notification.KindBorrowReminder,
			equipment: long,
			status:    request.StatusPending,
			wantFull:  long[:150] + "...",
			wantOver:  long[:151],
		},
		{
			name:      "status notice cuts at 100",
			kind:      notification.KindBorrowStatus,
			equipment: long,
			status:    request.StatusApproved,
			wantFull:  long[:100] + "...",
			wantOver:  long[:101],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := borrowData()
			data.EquipmentName = tt.equipment
			data.Status = tt.status

			msg, err := composer.Compose(tt.kind, data)

			assert.NoError(t, err)
			assert.Contains(t, msg.Body, tt.wantFull)
			if tt.wantOver != "" {
				assert.NotContains(t, msg.Body, tt.wantOver)
			}
		})
	}
}

func TestComposer_MissingFieldsRenderNA(t *testing.T) {
	composer := newComposer()

	data := reservationData()
	data.EquipmentNeeded = ""
	data.Phone = ""

	msg, err := composer.Compose(notification.KindReservationSubmitted, data)

	assert.NoError(t, err)
	assert.Contains(t, msg.Body, "N/A")
}

func TestComposer_UnknownKind(t *testing.T) {
	composer := newComposer()

	_, err := composer.Compose(notification.Kind("carrier_pigeon"), reservationData())

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
