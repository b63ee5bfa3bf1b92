package model

import "time"

// MediaBlob is the metadata record for one stored binary. The object bytes
// live in the bucket under ID.
type MediaBlob struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Mime      string    `bson:"mime"`
	Size      int64     `bson:"size"`
	Bucket    string    `bson:"bucket"`
	CreatedAt time.Time `bson:"created_at"`
}
