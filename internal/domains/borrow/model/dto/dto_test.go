package dto_test

import (
	"testing"

	"studio/internal/domains/borrow/model"
	"studio/internal/domains/borrow/model/dto"
	"studio/internal/domains/request"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBorrowRequest_ToModel(t *testing.T) {
	req := dto.CreateBorrowRequest{
		StudentName:   "Omar Al Ketbi",
		StudentID:     "202009876",
		Email:         "omar@uaeu.ac.ae",
		Phone:         "055-987-6543",
		College:       "CHSS",
		Department:    "Communication",
		EquipmentType: "Camera Kit",
		EquipmentName: "Sony FX3, tripod, lav mic",
		BorrowDate:    "2026-09-20",
		ReturnDate:    "2026-09-22",
		Purpose:       "Documentary field shoot",
		Supervisor:    "Dr. Ahmed",
	}

	m := req.ToModel()

	assert.Zero(t, m.ID, "expected ID to be assigned by the store")
	assert.Equal(t, req.StudentName, m.StudentName)
	assert.Equal(t, req.EquipmentType, m.EquipmentType)
	assert.Equal(t, req.EquipmentName, m.EquipmentName)
	assert.Equal(t, req.BorrowDate, m.BorrowDate)
	assert.Equal(t, req.ReturnDate, m.ReturnDate)
	assert.Equal(t, req.Purpose, m.Purpose)
	assert.Equal(t, request.StatusPending, m.Status)
	assert.False(t, m.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.Equal(t, m.CreatedAt, m.UpdatedAt, "new records carry matching timestamps")
}

func TestBorrowResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bor := model.Borrow{
		ID:            17,
		StudentName:   "Omar Al Ketbi",
		StudentID:     "202009876",
		Email:         "omar@uaeu.ac.ae",
		Phone:         "055-987-6543",
		College:       "CHSS",
		Department:    "Communication",
		EquipmentType: "Camera Kit",
		EquipmentName: "Sony FX3, tripod, lav mic",
		BorrowDate:    "2026-09-20",
		ReturnDate:    "2026-09-22",
		Purpose:       "Documentary field shoot",
		Supervisor:    "Dr. Ahmed",
		Status:        request.StatusRejected,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.BorrowResponse
	response.FromModel(bor)

	assert.Equal(t, bor.ID, response.ID)
	assert.Equal(t, bor.StudentName, response.StudentName)
	assert.Equal(t, bor.EquipmentName, response.EquipmentName)
	assert.Equal(t, bor.BorrowDate, response.BorrowDate)
	assert.Equal(t, bor.ReturnDate, response.ReturnDate)
	assert.Equal(t, "Rejected", response.Status)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.UpdatedAt)
}

func TestFromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Borrow{
		{ID: 1, EquipmentName: "Zoom H6", Status: request.StatusPending, Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now}},
		{ID: 2, EquipmentName: "GoPro 12", Status: request.StatusApproved, Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now}},
	}

	responses := dto.FromModels(models)

	assert.Len(t, responses, len(models))
	for i, bor := range responses {
		assert.Equal(t, models[i].ID, bor.ID)
		assert.Equal(t, models[i].EquipmentName, bor.EquipmentName)
		assert.Equal(t, models[i].Status.String(), bor.Status)
	}
}
