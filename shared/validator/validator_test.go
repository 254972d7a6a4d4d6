package validator_test

import (
	"strings"
	"studio/shared/validator"
	"testing"
)

// Test structs for validation
type intakeTestStruct struct {
	StudentName string `validate:"required,max=200" json:"studentName"`
	Email       string `validate:"required,email"   json:"email"`
	Status      string `validate:"omitempty,oneof=Pending Approved Rejected" json:"status"`
	ID          int64  `validate:"omitempty,gt=0"   json:"id"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *intakeTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &intakeTestStruct{
				StudentName: "Sara Al Marri",
				Email:       "sara@uaeu.ac.ae",
				Status:      "Pending",
				ID:          1,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &intakeTestStruct{
				Email: "sara@uaeu.ac.ae",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &intakeTestStruct{
				StudentName: "Sara Al Marri",
				Email:       "not-an-email",
			},
			expectError: true,
		},
		{
			name: "status outside the enum",
			data: &intakeTestStruct{
				StudentName: "Sara Al Marri",
				Email:       "sara@uaeu.ac.ae",
				Status:      "Archived",
			},
			expectError: true,
		},
		{
			name: "non positive id",
			data: &intakeTestStruct{
				StudentName: "Sara Al Marri",
				Email:       "sara@uaeu.ac.ae",
				ID:          -3,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"studentName": "Sara Al Marri", "email": "sara@uaeu.ac.ae"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"studentName":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"studentName": "Sara Al Marri"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := intakeTestStruct{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("sara@uaeu.ac.ae", "required,email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected error, got nil")
	}
}
