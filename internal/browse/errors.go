package browse

import "fmt"

// ValidationError reports malformed input caught before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FetchError reports a network failure or non-success response from the
// drink API. Status is zero when the request never produced a response.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch failed (%d): %s", e.Status, e.Message)
	}
	return "fetch failed: " + e.Message
}

// NotFoundError reports a detail lookup that resolved cleanly to "no such
// drink". It is a successful negative result, not a transport failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("drink %q not found", e.ID)
}
