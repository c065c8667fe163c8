package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is a single day's attendance value.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Valid reports whether s is one of the recognized status values.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// MonthlyAttendance is the per-employee-per-month attendance document.
// Days is a sparse map keyed by zero-padded day-of-month ("01".."31");
// a missing key means the day was never marked. The three counters are
// persisted alongside Days and must stay consistent with it after every
// write: TotalMarked == PresentCount + AbsentCount == len(Days).
type MonthlyAttendance struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId"`
	Month        string             `json:"month" bson:"month"` // YYYY-MM
	Days         map[string]Status  `json:"days" bson:"days"`
	PresentCount int                `json:"presentCount" bson:"presentCount"`
	AbsentCount  int                `json:"absentCount" bson:"absentCount"`
	TotalMarked  int                `json:"totalMarked" bson:"totalMarked"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MarkAttendanceRequest is the body of POST /api/attendance.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

// AttendanceFilter narrows getAttendanceByEmployee results.
// All fields are optional; empty means "no filter".
type AttendanceFilter struct {
	Month  string
	Date   string
	Status string
}

// AttendanceRecord is one flattened day from a monthly document.
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

// DailyAttendanceRecord is one employee's status on a specific date.
type DailyAttendanceRecord struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

// AttendanceSummary holds all-time totals for one employee, summed
// across every monthly document.
type AttendanceSummary struct {
	TotalPresent int `json:"totalPresent" bson:"totalPresent"`
	TotalAbsent  int `json:"totalAbsent" bson:"totalAbsent"`
	TotalMarked  int `json:"totalMarked" bson:"totalMarked"`
}
