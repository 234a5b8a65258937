package dtos

import "encoding/json"

type ErrorResponse struct {
	Error string `json:"error"`
}

// DocumentResponse carries a single document; a nil Document serializes as
// null for the not-found case.
type DocumentResponse struct {
	Document json.RawMessage `json:"document"`
}

type DocumentsResponse struct {
	Documents []json.RawMessage `json:"documents"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type HomeResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	API          string `json:"api"`
	Database     string `json:"database,omitempty"`
	DatabaseName string `json:"database_name,omitempty"`
	Error        string `json:"error,omitempty"`
}
