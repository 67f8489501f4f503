package contractorRepo

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

// MongoContractorRepo implements ContractorRepository using MongoDB.
type MongoContractorRepo struct {
	coll      *mongo.Collection
	listsColl *mongo.Collection
}

// NewMongoContractorRepo creates a new instance of ContractorRepository using MongoDB.
func NewMongoContractorRepo() ContractorRepository {
	db := database.MongoClient.Database("smartscheduler")
	repo := &MongoContractorRepo{
		coll:      db.Collection("contractors"),
		listsColl: db.Collection("dispatcher_lists"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoContractorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create contractor indexes: %w", err)
	}

	listIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "dispatcherId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.listsColl.Indexes().CreateOne(ctx, listIndex); err != nil {
		return fmt.Errorf("failed to create dispatcher list index: %w", err)
	}
	return nil
}

// GetByID retrieves a contractor by its unique ID.
func (r *MongoContractorRepo) GetByID(id string) (*models.Contractor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contractor models.Contractor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contractor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contractor with id %s: %w", id, err)
	}
	return &contractor, nil
}

// GetActiveIDs returns the IDs of all active contractors.
func (r *MongoContractorRepo) GetActiveIDs() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active contractors: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode contractor id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// GetDispatcherList returns the contractor IDs on a dispatcher's curated list.
// A dispatcher without a stored list gets an empty slice.
func (r *MongoContractorRepo) GetDispatcherList(dispatcherID string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		DispatcherID  string   `bson:"dispatcherId"`
		ContractorIDs []string `bson:"contractorIds"`
	}
	if err := r.listsColl.FindOne(ctx, bson.M{"dispatcherId": dispatcherID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to fetch dispatcher list for %s: %w", dispatcherID, err)
	}
	return doc.ContractorIDs, nil
}
