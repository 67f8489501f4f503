package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"smartscheduler/database"
	"smartscheduler/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssignmentRepo implements AssignmentRepository using MongoDB.
type MongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo creates a new instance of AssignmentRepository using MongoDB.
func NewMongoAssignmentRepo() AssignmentRepository {
	coll := database.MongoClient.Database("smartscheduler").Collection("assignments")
	repo := &MongoAssignmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAssignmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "contractorId", Value: 1}, {Key: "jobDate", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create assignment indexes: %w", err)
	}
	return nil
}

// GetActiveForContractorOnDate returns the contractor's availability-blocking
// assignments for the given date.
func (r *MongoAssignmentRepo) GetActiveForContractorOnDate(contractorID, date string) ([]models.Assignment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"contractorId": contractorID,
		"jobDate":      date,
		"status":       bson.M{"$in": models.ActiveAssignmentStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve assignments for contractor %s on %s: %w", contractorID, date, err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	for cursor.Next(ctx) {
		var a models.Assignment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
