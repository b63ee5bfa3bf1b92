package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MediaCollection = "media"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "name", "mime", "size", "bucket", "created_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"name":       bson.M{"bsonType": "string"},
				"mime":       bson.M{"bsonType": "string"},
				"size":       bson.M{"bsonType": "long"},
				"bucket":     bson.M{"bsonType": "string"},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	})

	return db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts)
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}
