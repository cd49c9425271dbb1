// internal/repositories/draw_repository.go
// Draw audit storage backed by MongoDB

package repositories

import (
	"context"
	"fmt"
	"time"

	"drawbracket/internal/draw"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DrawRecord is the immutable audit document written for every completed
// draw. Documents are keyed by draw_seed: regenerating the same request
// overwrites the same record rather than appending a duplicate.
type DrawRecord struct {
	DrawSeed  string        `bson:"draw_seed"`
	Request   draw.Request  `bson:"request"`
	Response  draw.Response `bson:"response"`
	CreatedAt time.Time     `bson:"created_at"`
}

// DrawRepository handles draw audit data access
type DrawRepository struct {
	db *mongo.Database
}

// NewDrawRepository creates a new draw repository
func NewDrawRepository(db *mongo.Database) *DrawRepository {
	return &DrawRepository{db: db}
}

func (r *DrawRepository) collection() *mongo.Collection {
	return r.db.Collection("draws")
}

// Save upserts the audit record for a draw_seed.
func (r *DrawRepository) Save(ctx context.Context, drawSeed string, req draw.Request, resp *draw.Response) error {
	record := DrawRecord{
		DrawSeed:  drawSeed,
		Request:   req,
		Response:  *resp,
		CreatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"draw_seed": drawSeed}, record, opts)
	if err != nil {
		return fmt.Errorf("failed to save draw record: %w", err)
	}
	return nil
}

// FindBySeed retrieves a previously generated draw by its seed.
func (r *DrawRepository) FindBySeed(ctx context.Context, drawSeed string) (*DrawRecord, error) {
	var record DrawRecord
	err := r.collection().FindOne(ctx, bson.M{"draw_seed": drawSeed}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("draw not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draw record: %w", err)
	}
	return &record, nil
}
