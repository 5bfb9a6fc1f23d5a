package catalog

import (
	"encoding/xml"
	"fmt"
)

// DefinitionError is a structured parse error for a catalog definition.
// Source identifies the item (name or row id), Line the position inside the
// XML document when known.
type DefinitionError struct {
	Source  string // item name or row identifier
	Line    int    // line inside the definition (0 if unknown)
	Message string // primary error message
	Hint    string // actionable suggestion, if any
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	location := e.Source
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.Source, e.Line)
	}
	msg := fmt.Sprintf("definition error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// wrapXMLError converts xml package errors to DefinitionError with line
// numbers when available.
func wrapXMLError(err error, source string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &DefinitionError{
			Source:  source,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
			Hint: "The system catalog row holds a truncated or corrupted XML definition.\n" +
				"Compact or repair the geodatabase with the tooling that created it.",
		}
	}
	return &DefinitionError{
		Source:  source,
		Message: err.Error(),
	}
}
