package model

import "fmt"

// Kind identifies one of the seven error kinds of spec §7. Errors are
// always values returned from core operations, never thrown control flow.
type Kind string

const (
	KindParseError            Kind = "parse_error"
	KindUnsupportedConstruct  Kind = "unsupported_construct"
	KindReifyError            Kind = "reify_error"
	KindUnsupportedLanguage   Kind = "unsupported_language"
	KindValidationError       Kind = "validation_error"
	KindConflictError         Kind = "conflict_error"
	KindIOError               Kind = "io_error"
)

// Error is the structured error type every core operation returns. It
// carries a Kind plus whatever structured fields are relevant (line,
// column, node path, construct names) so callers can branch on Kind
// with errors.As without parsing messages.
type Error struct {
	Kind    Kind
	Message string

	Line   int    // parse_error: 1-indexed source line, 0 if unknown
	Column int    // parse_error: 1-indexed source column, 0 if unknown
	Path   string // validation_error: offending node path
	Tag    Tag    // unsupported_construct/reify_error: the node tag involved

	Language string // unsupported_language / reify_error: the offending tag

	// conflict_error fields
	Construct string
	ModuleA   string
	ModuleB   string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

func ParseError(line, column int, message string) *Error {
	return &Error{Kind: KindParseError, Line: line, Column: column, Message: message}
}

func UnsupportedConstruct(tag Tag, message string) *Error {
	return &Error{Kind: KindUnsupportedConstruct, Tag: tag, Message: message}
}

func ReifyError(language string, tag Tag, message string) *Error {
	return &Error{Kind: KindReifyError, Language: language, Tag: tag, Message: message}
}

func UnsupportedLanguage(language string) *Error {
	return &Error{Kind: KindUnsupportedLanguage, Language: language, Message: "unsupported language: " + language}
}

func ValidationError(path, message string) *Error {
	return &Error{Kind: KindValidationError, Path: path, Message: message}
}

func ConflictError(construct, language, moduleA, moduleB string) *Error {
	return &Error{
		Kind:      KindConflictError,
		Construct: construct,
		Language:  language,
		ModuleA:   moduleA,
		ModuleB:   moduleB,
		Message:   fmt.Sprintf("construct %q for language %q already claimed by %q (attempted by %q)", construct, language, moduleA, moduleB),
	}
}

func IOError(message string) *Error {
	return &Error{Kind: KindIOError, Message: message}
}

// Is lets errors.Is(err, &Error{Kind: K}) match by Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == "" {
		return false
	}
	return e.Kind == t.Kind
}
