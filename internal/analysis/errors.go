package analysis

import "fmt"

// InvalidInputError indicates a resume payload analysis cannot proceed on,
// such as non-UTF-8 bytes from a binary file.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
