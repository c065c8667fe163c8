package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a directory identity record. EmployeeID and Email are
// each globally unique; Email is stored lowercased.
type Employee struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID string             `json:"employeeId" bson:"employeeId"`
	FullName   string             `json:"fullName" bson:"fullName"`
	Email      string             `json:"email" bson:"email"`
	Department string             `json:"department" bson:"department"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateEmployeeRequest is the body of POST /api/employees.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Department string `json:"department" validate:"required"`
}
