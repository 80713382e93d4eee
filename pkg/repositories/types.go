package repositories

// DefaultProfileID names the single local player's snapshot.
const DefaultProfileID = "default"

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
