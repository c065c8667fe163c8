package repository

import (
	"context"
	"errors"
	"fmt"

	"hrmsproject/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	// FindByEmployeeID returns nil when no employee carries the ID.
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	// FindByEmail matches the stored (lowercased) email exactly.
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	GetAll(ctx context.Context) ([]models.Employee, error)
	// Delete removes the employee and reports whether one was removed.
	Delete(ctx context.Context, employeeID string) (bool, error)
	// Exists is the narrow lookup the attendance service depends on.
	Exists(ctx context.Context, employeeID string) (bool, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{
		collection: db.Collection("employees"),
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	employee.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflict(fmt.Sprintf(
				"employee with ID '%s' or email '%s' already exists", employee.EmployeeID, employee.Email))
		}
		return err
	}

	return nil
}

func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &employee, nil
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &employee, nil
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}

func (r *employeeRepository) Exists(ctx context.Context, employeeID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"employeeId": employeeID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
