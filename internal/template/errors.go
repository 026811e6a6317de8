package template

import "fmt"

// ParseError indicates malformed template source, such as an unterminated
// block. Missing data is never a parse error; only the template text itself
// can produce one.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template parse error at offset %d: %s", e.Offset, e.Message)
}
