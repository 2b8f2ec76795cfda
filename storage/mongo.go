package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/raushankrgupta/product-reconciler/report"
)

// RunStore persists run summaries to MongoDB so results remain
// queryable across runs.
type RunStore struct {
	client *mongo.Client
}

// NewRunStore connects and pings the database.
func NewRunStore(ctx context.Context, uri string) (*RunStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &RunStore{client: client}, nil
}

// SaveRun inserts one run summary into the runs collection.
func (s *RunStore) SaveRun(ctx context.Context, summary *report.RunSummary) error {
	col := s.client.Database("reconciler").Collection("runs")
	if _, err := col.InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *RunStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
