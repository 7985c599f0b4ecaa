package curriculum

import (
	"errors"
	"fmt"
)

// Sentinel kinds for enum parse failures. Match with errors.Is.
var (
	ErrInvalidGrade         = errors.New("invalid grade level")
	ErrInvalidTopic         = errors.New("invalid math topic")
	ErrInvalidDifficulty    = errors.New("invalid difficulty level")
	ErrInvalidLearningStyle = errors.New("invalid learning style")
)

// InvalidEnumError reports a string that does not name a known enum value.
type InvalidEnumError struct {
	Kind  error
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Value)
}

func (e *InvalidEnumError) Unwrap() error { return e.Kind }
