package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"hrmsproject/models"
	repository "hrmsproject/repositories"
	"hrmsproject/utils"
)

// EmployeeDirectory is the only view of the employee records the
// attendance service needs: an existence check before marking.
type EmployeeDirectory interface {
	Exists(ctx context.Context, employeeID string) (bool, error)
}

type AttendanceService interface {
	MarkAttendance(ctx context.Context, employeeID, date, status string) (*models.MonthlyAttendance, bool, error)
	GetAttendanceByEmployee(ctx context.Context, employeeID string, filter models.AttendanceFilter) ([]models.AttendanceRecord, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]models.DailyAttendanceRecord, error)
	GetAttendanceSummary(ctx context.Context) (map[string]models.AttendanceSummary, error)
}

type attendanceService struct {
	log       *slog.Logger
	repo      repository.AttendanceRepository
	directory EmployeeDirectory
}

func NewAttendanceService(log *slog.Logger, repo repository.AttendanceRepository, directory EmployeeDirectory) AttendanceService {
	return &attendanceService{
		log:       log,
		repo:      repo,
		directory: directory,
	}
}

func (s *attendanceService) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "attendance"),
	)
}

// MarkAttendance sets or changes one day's status in the employee's
// monthly document, keeping presentCount, absentCount and totalMarked
// consistent with the days map. The document is created lazily on the
// first mark for its (employeeId, month) key and the whole document is
// persisted as one write, so a single call never commits a partial
// mutation. The read-modify-write sequence is not serialized across
// concurrent calls for the same key; see DESIGN.md.
//
// The returned bool reports whether anything changed: marking a day
// with the status it already has is a no-op and persists nothing.
func (s *attendanceService) MarkAttendance(ctx context.Context, employeeID, date, status string) (*models.MonthlyAttendance, bool, error) {
	const opn = "Attendance.Mark"
	log := s.initLogger(opn)

	if employeeID == "" || date == "" || status == "" {
		return nil, false, models.NewInvalidInput("employeeId, date, and status are required")
	}

	st := models.Status(status)
	if !st.Valid() {
		return nil, false, models.NewInvalidInput("status must be either Present or Absent")
	}

	if !utils.IsValidDate(date) {
		return nil, false, models.NewInvalidInput("date must be in YYYY-MM-DD format")
	}

	exists, err := s.directory.Exists(ctx, employeeID)
	if err != nil {
		return nil, false, models.NewStorageError("failed to look up employee", err)
	}
	if !exists {
		return nil, false, models.NewNotFound(fmt.Sprintf("employee with ID '%s' not found", employeeID))
	}

	month, day := utils.SplitDate(date)

	doc, err := s.repo.FindByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return nil, false, models.NewStorageError("failed to load attendance document", err)
	}

	now := time.Now()
	if doc == nil {
		doc = &models.MonthlyAttendance{
			EmployeeID: employeeID,
			Month:      month,
			Days:       make(map[string]models.Status),
			CreatedAt:  now,
		}
	}
	if doc.Days == nil {
		doc.Days = make(map[string]models.Status)
	}

	prevStatus, marked := doc.Days[day]
	if marked && prevStatus == st {
		log.DebugContext(ctx, "status unchanged, skipping write",
			"employeeId", employeeID, "date", date, "status", status)
		return doc, false, nil
	}

	doc.Days[day] = st
	if !marked {
		doc.TotalMarked++
		if st == models.StatusPresent {
			doc.PresentCount++
		} else {
			doc.AbsentCount++
		}
	} else {
		// Flip: bump the new counter, drop the old one. The decrement is
		// clamped at zero so corrupt stored counters can never go negative.
		if st == models.StatusPresent {
			doc.PresentCount++
			if doc.AbsentCount > 0 {
				doc.AbsentCount--
			}
		} else {
			doc.AbsentCount++
			if doc.PresentCount > 0 {
				doc.PresentCount--
			}
		}
	}
	doc.UpdatedAt = now

	if err := s.repo.Upsert(ctx, doc); err != nil {
		if models.KindOf(err) == models.ErrConflict {
			return nil, false, err
		}
		return nil, false, models.NewStorageError("failed to save attendance document", err)
	}

	log.InfoContext(ctx, "attendance marked",
		"employeeId", employeeID, "date", date, "status", status, "previouslyMarked", marked)

	return doc, true, nil
}

// GetAttendanceByEmployee flattens the employee's monthly documents
// into per-day records, applies the optional filters, and sorts the
// result by date descending. No matches is an empty list, not an error.
func (s *attendanceService) GetAttendanceByEmployee(ctx context.Context, employeeID string, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	if filter.Date != "" && !utils.IsValidDate(filter.Date) {
		return nil, models.NewInvalidInput("date must be in YYYY-MM-DD format")
	}

	// Narrow the document query to one month when possible: an explicit
	// month filter wins, otherwise a date filter implies its month.
	month := filter.Month
	if month == "" && filter.Date != "" {
		month, _ = utils.SplitDate(filter.Date)
	}

	docs, err := s.repo.FindByEmployee(ctx, employeeID, month)
	if err != nil {
		return nil, models.NewStorageError("failed to load attendance documents", err)
	}

	records := make([]models.AttendanceRecord, 0)
	for _, doc := range docs {
		for day, status := range doc.Days {
			records = append(records, models.AttendanceRecord{
				Date:   doc.Month + "-" + day,
				Status: status,
			})
		}
	}

	filtered := records[:0]
	for _, record := range records {
		if filter.Date != "" && record.Date != filter.Date {
			continue
		}
		if filter.Status != "" && string(record.Status) != filter.Status {
			continue
		}
		filtered = append(filtered, record)
	}
	records = filtered

	// Fixed-width YYYY-MM-DD makes the string compare a date compare.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})

	return records, nil
}

// GetAttendanceByDate reports every employee's status for one date.
// Monthly documents with no entry for that day are skipped.
func (s *attendanceService) GetAttendanceByDate(ctx context.Context, date string) ([]models.DailyAttendanceRecord, error) {
	if date == "" {
		return nil, models.NewInvalidInput("date query parameter is required")
	}
	if !utils.IsValidDate(date) {
		return nil, models.NewInvalidInput("date must be in YYYY-MM-DD format")
	}

	month, day := utils.SplitDate(date)

	docs, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return nil, models.NewStorageError("failed to load attendance documents", err)
	}

	records := make([]models.DailyAttendanceRecord, 0)
	for _, doc := range docs {
		status, ok := doc.Days[day]
		if !ok {
			continue
		}
		records = append(records, models.DailyAttendanceRecord{
			EmployeeID: doc.EmployeeID,
			Date:       date,
			Status:     status,
		})
	}

	return records, nil
}

// GetAttendanceSummary returns all-time totals per employee. Employees
// with no monthly documents do not appear in the map.
func (s *attendanceService) GetAttendanceSummary(ctx context.Context) (map[string]models.AttendanceSummary, error) {
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, models.NewStorageError("failed to aggregate attendance summary", err)
	}

	return summary, nil
}
