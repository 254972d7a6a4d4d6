package dto

import (
	"studio/internal/domains/borrow/model"
	"studio/internal/domains/request"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

// CreateBorrowRequest is the intake-form payload for an equipment loan.
type CreateBorrowRequest struct {
	StudentName   string `json:"studentName"   validate:"required,max=200"`
	StudentID     string `json:"studentId"     validate:"required,max=50"`
	Email         string `json:"email"         validate:"required,email,max=200"`
	Phone         string `json:"phone"         validate:"required,max=50"`
	College       string `json:"college"       validate:"required,max=200"`
	Department    string `json:"department"    validate:"required,max=200"`
	EquipmentType string `json:"equipmentType" validate:"required,max=200"`
	EquipmentName string `json:"equipmentName" validate:"required"`
	BorrowDate    string `json:"borrowDate"    validate:"required,max=50"`
	ReturnDate    string `json:"returnDate"    validate:"required,max=50"`
	Purpose       string `json:"purpose"       validate:"required"`
	Supervisor    string `json:"supervisor"    validate:"required,max=200"`
}

func (c *CreateBorrowRequest) ToModel() model.Borrow {
	now := timezone.Now()

	return model.Borrow{
		StudentName:   c.StudentName,
		StudentID:     c.StudentID,
		Email:         c.Email,
		Phone:         c.Phone,
		College:       c.College,
		Department:    c.Department,
		EquipmentType: c.EquipmentType,
		EquipmentName: c.EquipmentName,
		BorrowDate:    c.BorrowDate,
		ReturnDate:    c.ReturnDate,
		Purpose:       c.Purpose,
		Supervisor:    c.Supervisor,
		Status:        request.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type NotifyRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type BorrowResponse struct {
	ID            int64  `json:"id"`
	StudentName   string `json:"studentName"`
	StudentID     string `json:"studentId"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Department    string `json:"department"`
	EquipmentType string `json:"equipmentType"`
	EquipmentName string `json:"equipmentName"`
	BorrowDate    string `json:"borrowDate"`
	ReturnDate    string `json:"returnDate"`
	Purpose       string `json:"purpose"`
	Supervisor    string `json:"supervisor"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (b *BorrowResponse) FromModel(model model.Borrow) {
	b.ID = model.ID
	b.StudentName = model.StudentName
	b.StudentID = model.StudentID
	b.Email = model.Email
	b.Phone = model.Phone
	b.College = model.College
	b.Department = model.Department
	b.EquipmentType = model.EquipmentType
	b.EquipmentName = model.EquipmentName
	b.BorrowDate = model.BorrowDate
	b.ReturnDate = model.ReturnDate
	b.Purpose = model.Purpose
	b.Supervisor = model.Supervisor
	b.Status = model.Status.String()
	b.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Borrow) []BorrowResponse {
	responses := make([]BorrowResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
