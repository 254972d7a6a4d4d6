package dto_test

import (
	"testing"

	"studio/internal/domains/request"
	"studio/internal/domains/reservation/model"
	"studio/internal/domains/reservation/model/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		StudentName:        "Sara Al Marri",
		StudentID:          "202104558",
		Email:              "sara@uaeu.ac.ae",
		Phone:              "050-123-4567",
		College:            "CHSS",
		Department:         "Media & Creative Industries",
		Date:               "2026-09-15",
		FromTime:           "10:00",
		ToTime:             "12:00",
		Duration:           "2 hours",
		Supervisor:         "Dr. Ahmed",
		StudioType:         "Podcast Studio",
		ProjectTitle:       "Campus Voices",
		ProjectDescription: "Weekly interview series",
		EquipmentNeeded:    "2 mics, headphones",
	}

	m := req.ToModel()

	assert.Zero(t, m.ID, "expected ID to be assigned by the store")
	assert.Equal(t, req.StudentName, m.StudentName)
	assert.Equal(t, req.StudentID, m.StudentID)
	assert.Equal(t, req.Email, m.Email)
	assert.Equal(t, req.Date, m.Date)
	assert.Equal(t, req.FromTime, m.FromTime)
	assert.Equal(t, req.ToTime, m.ToTime)
	assert.Equal(t, req.StudioType, m.StudioType)
	assert.Equal(t, req.ProjectTitle, m.ProjectTitle)
	assert.Equal(t, req.EquipmentNeeded, m.EquipmentNeeded)
	assert.Equal(t, request.StatusPending, m.Status)
	assert.False(t, m.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.Equal(t, m.CreatedAt, m.UpdatedAt, "new records carry matching timestamps")
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	res := model.Reservation{
		ID:                 42,
		StudentName:        "Sara Al Marri",
		StudentID:          "202104558",
		Email:              "sara@uaeu.ac.ae",
		Phone:              "050-123-4567",
		College:            "CHSS",
		Department:         "Media & Creative Industries",
		Date:               "2026-09-15",
		FromTime:           "10:00",
		ToTime:             "12:00",
		Duration:           "2 hours",
		Supervisor:         "Dr. Ahmed",
		StudioType:         "Podcast Studio",
		ProjectTitle:       "Campus Voices",
		ProjectDescription: "Weekly interview series",
		Status:             request.StatusApproved,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.ReservationResponse
	response.FromModel(res)

	assert.Equal(t, res.ID, response.ID)
	assert.Equal(t, res.StudentName, response.StudentName)
	assert.Equal(t, res.Email, response.Email)
	assert.Equal(t, res.Date, response.Date)
	assert.Equal(t, res.StudioType, response.StudioType)
	assert.Equal(t, "Approved", response.Status)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.UpdatedAt)
}

func TestFromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Reservation{
		{ID: 1, StudentName: "First", Status: request.StatusPending, Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now}},
		{ID: 2, StudentName: "Second", Status: request.StatusRejected, Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now}},
	}

	responses := dto.FromModels(models)

	assert.Len(t, responses, len(models))
	for i, res := range responses {
		assert.Equal(t, models[i].ID, res.ID)
		assert.Equal(t, models[i].StudentName, res.StudentName)
		assert.Equal(t, models[i].Status.String(), res.Status)
	}
}

func TestFromModels_EmptyList(t *testing.T) {
	responses := dto.FromModels(nil)

	assert.NotNil(t, responses, "an empty list still serializes as a JSON array")
	assert.Len(t, responses, 0)
}
