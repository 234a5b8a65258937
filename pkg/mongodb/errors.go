package mongodb

import "fmt"

// ConfigurationError reports missing or unusable connection configuration.
// Requests that need the database keep failing with it until the
// environment is corrected; it never crashes the process.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// ConnectionError reports a failure to reach or ping the server, wrapping
// the driver's underlying cause.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("Failed to connect to MongoDB: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
