package repository

import (
	"context"
	"fmt"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// flightRecordDocument is the stored form of a flight record
type flightRecordDocument struct {
	entity.FlightRecord `bson:",inline"`
	CreatedAt           time.Time `bson:"createdAt"`
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(db *mongo.Database) *MongoFlightRecordRepository {
	return &MongoFlightRecordRepository{
		collection: db.Collection("flight_records"),
	}
}

var _ repository.FlightRecordRepository = (*MongoFlightRecordRepository)(nil)

// EnsureIndexes creates the indexes used for listing and filtering
func (r *MongoFlightRecordRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.M{"date": 1}},
		{Keys: bson.M{"student": 1}},
		{Keys: bson.M{"aircraft": 1}},
	})
	if err != nil {
		return fmt.Errorf("create flight_records indexes: %w", err)
	}
	return nil
}

// List returns every flight record in insertion order
func (r *MongoFlightRecordRepository) List(ctx context.Context) ([]entity.FlightRecord, error) {
	return r.find(ctx, bson.M{})
}

// ListFiltered returns the flight records matching filter in insertion order
func (r *MongoFlightRecordRepository) ListFiltered(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error) {
	query, err := mongoFlightFilter(filter)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, query)
}

// Create inserts a new flight record
func (r *MongoFlightRecordRepository) Create(ctx context.Context, record *entity.FlightRecord) error {
	if record.ID == "" {
		return fmt.Errorf("flight record id is empty")
	}

	doc := flightRecordDocument{
		FlightRecord: *record,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert flight record: %w", err)
	}
	return nil
}

func (r *MongoFlightRecordRepository) find(ctx context.Context, query bson.M) ([]entity.FlightRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find flight records: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []flightRecordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode flight records: %w", err)
	}

	records := make([]entity.FlightRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.FlightRecord)
	}
	return records, nil
}

// mongoFlightFilter translates a flight filter into a query document
func mongoFlightFilter(filter entity.FlightFilter) (bson.M, error) {
	query := bson.M{}
	if filter.Month != "" {
		start, end, err := utils.MonthBounds(filter.Month)
		if err != nil {
			return nil, err
		}
		query["date"] = bson.M{"$gte": start, "$lt": end}
	}
	if filter.Student != "" {
		query["student"] = filter.Student
	}
	if filter.Aircraft != "" {
		query["aircraft"] = filter.Aircraft
	}
	return query, nil
}
