package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/records/model"
)

// ErrNotFound is returned when no snapshot exists for a student id.
var ErrNotFound = errors.New("risk record not found")

// RecordStore persists per-student risk snapshots keyed by student_id.
// Upsert replaces the provided fields of the existing document or creates
// a new one; concurrent writers for the same key are last-write-wins.
type RecordStore interface {
	Upsert(ctx context.Context, rec model.RiskRecord) error
	Get(ctx context.Context, studentID int) (model.RiskRecord, error)
	List(ctx context.Context) ([]model.RiskRecord, error)
}

const collectionName = "risk_records"

// MongoStore is the production RecordStore over a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionName)}
}

func (s *MongoStore) Upsert(ctx context.Context, rec model.RiskRecord) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"student_id": rec.StudentID},
		bson.M{"$set": rec},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) Get(ctx context.Context, studentID int) (model.RiskRecord, error) {
	var rec model.RiskRecord
	err := s.coll.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.RiskRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *MongoStore) List(ctx context.Context) ([]model.RiskRecord, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"student_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []model.RiskRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
