package model

import (
	"studio/internal/domains/request"
	"studio/shared/model"
)

const (
	TableName  = "borrow_requests"
	EntityName = "borrow"

	FieldID         = "id"
	FieldBorrowDate = "borrow_date"
	FieldReturnDate = "return_date"
	FieldStatus     = "status"
	FieldCreatedAt  = "created_at"
)

// Borrow is one equipment loan request. Like reservations, the loan dates
// are stored as the display strings the intake form sends.
type Borrow struct {
	ID            int64          `db:"id"`
	StudentName   string         `db:"student_name"`
	StudentID     string         `db:"student_id"`
	Email         string         `db:"email"`
	Phone         string         `db:"phone"`
	College       string         `db:"college"`
	Department    string         `db:"department"`
	EquipmentType string         `db:"equipment_type"`
	EquipmentName string         `db:"equipment_name"`
	BorrowDate    string         `db:"borrow_date"`
	ReturnDate    string         `db:"return_date"`
	Purpose       string         `db:"purpose"`
	Supervisor    string         `db:"supervisor"`
	Status        request.Status `db:"status"`
	model.Metadata
}
