package reminder

import "fmt"

// NotFoundError is returned when an operation references an unknown
// reminder instance or medication.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidStateError is returned when a transition is requested from a state
// that does not permit it (e.g. snoozing an instance that was never shown).
type InvalidStateError struct {
	Op     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s an instance in state %q", e.Op, e.Status)
}
