package constants

// DefaultCollection is used whenever a request does not name a collection.
const DefaultCollection = "custom-orders"

// The category list lives as a single marker document in the default
// collection rather than in its own collection.
const (
	CategoriesMarkerField = "spec_id"
	CategoriesMarkerValue = "categories"
)

// SearchResultCap bounds the regex fallback that stands in for an Atlas
// Search index.
const SearchResultCap = 24
