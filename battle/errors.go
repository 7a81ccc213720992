package battle

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateShot = errors.New("coordinate already resolved")
	ErrGameOver      = errors.New("mission has ended")
)

// ShotError is a rejected firing attempt. Nothing in the session changes when one is returned.
type ShotError struct {
	Input string
	Err   error
}

func (e *ShotError) Error() string {
	return fmt.Sprintf("shot %q rejected: %v", e.Input, e.Err)
}

func (e *ShotError) Unwrap() error {
	return e.Err
}
