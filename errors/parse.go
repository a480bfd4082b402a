// Package errors defines the error codes and error types shared by the
// uidef parsing and decoding packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a uidef failure.
type ErrorCode string

const (
	// ErrDocumentMalformed indicates a document root that does not parse as XML.
	// The failure is scoped to the single document that produced it.
	ErrDocumentMalformed ErrorCode = "document-malformed"
	// ErrImageDecode indicates image bytes with invalid dimensions or an
	// unsupported type code. Fatal for the single decode call that raised it.
	ErrImageDecode ErrorCode = "image-decode"
	// ErrSchemaMalformed indicates schema XML that does not parse. The schema
	// is advisory, so the failure never affects document parsing.
	ErrSchemaMalformed ErrorCode = "schema-malformed"
)

// Parse describes a parse or decode error with its code and source file.
//
//nolint:errname // public API name uses the domain term.
type Parse struct {
	Code    string
	Message string
	File    string
}

// Error formats the parse error for display, including code and source file.
func (p *Parse) Error() string {
	if p == nil {
		return "parse <nil>"
	}
	if p.File != "" {
		return fmt.Sprintf("[%s] %s in %s", p.Code, p.Message, p.File)
	}
	return fmt.Sprintf("[%s] %s", p.Code, p.Message)
}

// ParseList is an error that wraps one or more parse errors.
type ParseList []Parse //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the parse errors.
func (p ParseList) Error() string {
	switch len(p) {
	case 0:
		return "no parse errors"
	case 1:
		return p[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", p[0].Error(), len(p)-1)
	}
}

// NewParse builds a Parse with a code, message, and optional source file.
func NewParse(code ErrorCode, msg, file string) Parse {
	return Parse{Code: string(code), Message: msg, File: file}
}

// NewParsef formats a message and builds a Parse.
func NewParsef(code ErrorCode, file, format string, args ...any) Parse {
	return NewParse(code, fmt.Sprintf(format, args...), file)
}

// AsParses extracts parse errors from an error returned by uidef helpers.
func AsParses(err error) ([]Parse, bool) {
	list, ok := asParseList(err)
	if !ok {
		return nil, false
	}
	return []Parse(list), true
}

func asParseList(err error) (ParseList, bool) {
	if err == nil {
		return nil, false
	}
	var list ParseList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ParseList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
