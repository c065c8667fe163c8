package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes sets up the unique keys both collections rely on: one
// monthly document per (employeeId, month), and globally unique
// employeeId and email in the directory.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attendanceIndexes := []mongo.IndexModel{
		// UNIQUE KEY: one document per employee per month
		// Used by: FindByEmployeeMonth, Upsert
		{
			Keys: bson.D{
				{Key: "employeeId", Value: 1},
				{Key: "month", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_employee_month"),
		},

		// QUERIES: all employees for one month
		// Used by: FindByMonth (getAttendanceByDate)
		{
			Keys: bson.D{
				{Key: "month", Value: 1},
			},
			Options: options.Index().SetName("idx_month"),
		},
	}

	if _, err := db.Collection("attendances").Indexes().CreateMany(ctx, attendanceIndexes); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}

	employeeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_employee_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_email"),
		},
	}

	if _, err := db.Collection("employees").Indexes().CreateMany(ctx, employeeIndexes); err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	return nil
}
