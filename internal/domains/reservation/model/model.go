package model

import (
	"studio/internal/domains/request"
	"studio/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

// Reservation is one studio booking request. Dates and times arrive from the
// intake form as display strings and are stored opaque; no temporal
// validation happens here.
type Reservation struct {
	ID                 int64          `db:"id"`
	StudentName        string         `db:"student_name"`
	StudentID          string         `db:"student_id"`
	Email              string         `db:"email"`
	Phone              string         `db:"phone"`
	College            string         `db:"college"`
	Department         string         `db:"department"`
	Date               string         `db:"date"`
	FromTime           string         `db:"from_time"`
	ToTime             string         `db:"to_time"`
	Duration           string         `db:"duration"`
	Supervisor         string         `db:"supervisor"`
	StudioType         string         `db:"studio_type"`
	ProjectTitle       string         `db:"project_title"`
	ProjectDescription string         `db:"project_description"`
	EquipmentNeeded    string         `db:"equipment_needed"`
	Status             request.Status `db:"status"`
	model.Metadata
}
