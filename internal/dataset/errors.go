package dataset

import "fmt"

// TransportError reports a non-success response while fetching the dataset.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dataset fetch failed with status %d", e.Status)
}

// SchemaError reports a dataset body that is not a usable feature collection.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "dataset schema invalid: " + e.Reason
}
