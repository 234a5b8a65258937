package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// searchFallbackFilter recognizes a leading $search stage using the
// autocomplete or text operator and converts it to a plain case-insensitive
// regex filter. Deployments without an Atlas Search index cannot execute
// $search, so the whole pipeline is replaced by the regex find; stages
// after the first are dropped. Any other $search operator (or a malformed
// $search value) falls through to a normal aggregation.
func searchFallbackFilter(stage bson.D) (bson.M, bool, error) {
	raw, found := lookup(stage, "$search")
	if !found {
		return nil, false, nil
	}
	search, ok := raw.(bson.D)
	if !ok {
		return nil, false, nil
	}

	for _, operator := range []string{"autocomplete", "text"} {
		raw, found := lookup(search, operator)
		if !found {
			continue
		}
		spec, ok := raw.(bson.D)
		if !ok {
			return nil, false, fmt.Errorf("$search %s must be a document", operator)
		}
		query, err := stringField(spec, operator, "query")
		if err != nil {
			return nil, false, err
		}
		path, err := stringField(spec, operator, "path")
		if err != nil {
			return nil, false, err
		}
		return bson.M{path: bson.M{"$regex": query, "$options": "i"}}, true, nil
	}

	return nil, false, nil
}

func lookup(doc bson.D, key string) (interface{}, bool) {
	for _, el := range doc {
		if el.Key == key {
			return el.Value, true
		}
	}
	return nil, false
}

func stringField(doc bson.D, operator, key string) (string, error) {
	raw, found := lookup(doc, key)
	if !found {
		return "", fmt.Errorf("$search %s is missing %q", operator, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("$search %s %q must be a string", operator, key)
	}
	return value, nil
}
