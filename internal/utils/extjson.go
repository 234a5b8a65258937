package utils

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// MarshalDocument renders a BSON document as relaxed extended JSON so
// ObjectIDs and dates keep their structured form ({"$oid": ...},
// {"$date": ...}) instead of collapsing to plain strings.
func MarshalDocument(doc interface{}) (json.RawMessage, error) {
	out, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// MarshalDocuments renders a result set; an empty set serializes as [],
// never null.
func MarshalDocuments(docs []bson.D) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		raw, err := MarshalDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}
