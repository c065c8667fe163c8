package repository

import (
	"context"
	"errors"
	"fmt"

	"hrmsproject/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceRepository interface {
	// FindByEmployeeMonth returns the monthly document for the
	// (employeeID, month) key, or nil when none exists yet.
	FindByEmployeeMonth(ctx context.Context, employeeID, month string) (*models.MonthlyAttendance, error)
	// Upsert writes the full document keyed by (employeeID, month),
	// creating it if the key is absent.
	Upsert(ctx context.Context, doc *models.MonthlyAttendance) error
	// FindByEmployee returns all monthly documents for an employee,
	// restricted to one month when month is non-empty, sorted by month
	// descending.
	FindByEmployee(ctx context.Context, employeeID, month string) ([]models.MonthlyAttendance, error)
	// FindByMonth returns every employee's document for one month.
	FindByMonth(ctx context.Context, month string) ([]models.MonthlyAttendance, error)
	// Summary sums the persisted counters across all documents, grouped
	// by employeeId.
	Summary(ctx context.Context) (map[string]models.AttendanceSummary, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		collection: db.Collection("attendances"),
	}
}

func (r *attendanceRepository) FindByEmployeeMonth(ctx context.Context, employeeID, month string) (*models.MonthlyAttendance, error) {
	var doc models.MonthlyAttendance
	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID, "month": month}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &doc, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, doc *models.MonthlyAttendance) error {
	filter := bson.M{"employeeId": doc.EmployeeID, "month": doc.Month}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, doc, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflict(fmt.Sprintf(
				"attendance document for employee '%s' and month '%s' already exists", doc.EmployeeID, doc.Month))
		}
		return err
	}

	return nil
}

func (r *attendanceRepository) FindByEmployee(ctx context.Context, employeeID, month string) ([]models.MonthlyAttendance, error) {
	filter := bson.M{"employeeId": employeeID}
	if month != "" {
		filter["month"] = month
	}

	opts := options.Find().SetSort(bson.D{{Key: "month", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.MonthlyAttendance
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *attendanceRepository) FindByMonth(ctx context.Context, month string) ([]models.MonthlyAttendance, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"month": month})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.MonthlyAttendance
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Summary groups all monthly documents by employeeId and sums each
// counter independently, mirroring the persisted-counter design: the
// aggregation never touches the days maps.
func (r *attendanceRepository) Summary(ctx context.Context) (map[string]models.AttendanceSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$employeeId",
			"totalPresent": bson.M{"$sum": "$presentCount"},
			"totalAbsent":  bson.M{"$sum": "$absentCount"},
			"totalMarked":  bson.M{"$sum": "$totalMarked"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EmployeeID   string `bson:"_id"`
		TotalPresent int    `bson:"totalPresent"`
		TotalAbsent  int    `bson:"totalAbsent"`
		TotalMarked  int    `bson:"totalMarked"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	summary := make(map[string]models.AttendanceSummary, len(rows))
	for _, row := range rows {
		summary[row.EmployeeID] = models.AttendanceSummary{
			TotalPresent: row.TotalPresent,
			TotalAbsent:  row.TotalAbsent,
			TotalMarked:  row.TotalMarked,
		}
	}

	return summary, nil
}
