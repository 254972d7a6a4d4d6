package dto

import (
	"studio/internal/domains/request"
	"studio/internal/domains/reservation/model"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

// CreateReservationRequest is the intake-form payload. Field names mirror
// the form's camelCase wire contract.
type CreateReservationRequest struct {
	StudentName        string `json:"studentName"        validate:"required,max=200"`
	StudentID          string `json:"studentId"          validate:"required,max=50"`
	Email              string `json:"email"              validate:"required,email,max=200"`
	Phone              string `json:"phone"              validate:"required,max=50"`
	College            string `json:"college"            validate:"required,max=200"`
	Department         string `json:"department"         validate:"required,max=200"`
	Date               string `json:"date"               validate:"required,max=50"`
	FromTime           string `json:"fromTime"           validate:"required,max=50"`
	ToTime             string `json:"toTime"             validate:"required,max=50"`
	Duration           string `json:"duration"           validate:"required,max=50"`
	Supervisor         string `json:"supervisor"         validate:"required,max=200"`
	StudioType         string `json:"studioType"         validate:"required,max=200"`
	ProjectTitle       string `json:"projectTitle"       validate:"required,max=300"`
	ProjectDescription string `json:"projectDescription" validate:"required"`
	EquipmentNeeded    string `json:"equipmentNeeded"    validate:"omitempty"`
}

func (c *CreateReservationRequest) ToModel() model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		StudentName:        c.StudentName,
		StudentID:          c.StudentID,
		Email:              c.Email,
		Phone:              c.Phone,
		College:            c.College,
		Department:         c.Department,
		Date:               c.Date,
		FromTime:           c.FromTime,
		ToTime:             c.ToTime,
		Duration:           c.Duration,
		Supervisor:         c.Supervisor,
		StudioType:         c.StudioType,
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
		EquipmentNeeded:    c.EquipmentNeeded,
		Status:             request.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// UpdateStatusRequest is the admin decision payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// NotifyRequest identifies the record a reminder or decision notice is
// composed from.
type NotifyRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type ReservationResponse struct {
	ID                 int64  `json:"id"`
	StudentName        string `json:"studentName"`
	StudentID          string `json:"studentId"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	College            string `json:"college"`
	Department         string `json:"department"`
	Date               string `json:"date"`
	FromTime           string `json:"fromTime"`
	ToTime             string `json:"toTime"`
	Duration           string `json:"duration"`
	Supervisor         string `json:"supervisor"`
	StudioType         string `json:"studioType"`
	ProjectTitle       string `json:"projectTitle"`
	ProjectDescription string `json:"projectDescription"`
	EquipmentNeeded    string `json:"equipmentNeeded"`
	Status             string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.StudentName = model.StudentName
	r.StudentID = model.StudentID
	r.Email = model.Email
	r.Phone = model.Phone
	r.College = model.College
	r.Department = model.Department
	r.Date = model.Date
	r.FromTime = model.FromTime
	r.ToTime = model.ToTime
	r.Duration = model.Duration
	r.Supervisor = model.Supervisor
	r.StudioType = model.StudioType
	r.ProjectTitle = model.ProjectTitle
	r.ProjectDescription = model.ProjectDescription
	r.EquipmentNeeded = model.EquipmentNeeded
	r.Status = model.Status.String()
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
