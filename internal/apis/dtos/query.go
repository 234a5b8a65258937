package dtos

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Request bodies decode through bson.UnmarshalExtJSON rather than
// encoding/json so extended-type values ({"$oid": ...}, {"$date": ...})
// inside filters and pipelines reach the driver intact, and key order is
// preserved. Unset fields keep their zero value; the service layer applies
// defaults.

type FindOneRequest struct {
	Collection string `bson:"collection"`
	Filter     bson.D `bson:"filter"`
}

type FindRequest struct {
	Collection string `bson:"collection"`
	Filter     bson.D `bson:"filter"`
	Limit      int64  `bson:"limit"`
	Skip       int64  `bson:"skip"`
	Sort       bson.D `bson:"sort"`
}

type AggregateRequest struct {
	Collection string   `bson:"collection"`
	Pipeline   []bson.D `bson:"pipeline"`
}

type CountRequest struct {
	Collection string `bson:"collection"`
	Filter     bson.D `bson:"filter"`
}
