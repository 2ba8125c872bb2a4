package iso20022

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/open-payments/iso20022/i18n"
)

// Code is a stable numeric validation code.
type Code int

// Validation codes. Values are part of the public contract.
const (
	CodeTooShort     Code = 1001
	CodeTooLong      Code = 1002
	CodeBelowMinimum Code = 1003
	CodeAboveMaximum Code = 1004
	CodePattern      Code = 1005
	CodeInvalidEnum  Code = 1006
	CodeChoice       Code = 1007
	// Envelope level, not field level.
	CodeUnknownDocument Code = 9999
)

// ValidationError describes the first violation found in a value.
type ValidationError struct {
	Code Code
	// Field is the element name of the innermost offending field. For a leaf
	// validated on its own it is the leaf type name.
	Field string
	// Path is a JSON Pointer relative to the validated root (for example
	// /CdtTrfTxInf/0/Dbtr/PstlAdr/Ctry).
	Path string
	// Params carries the constraint parameters (min, max, allowed) for i18n.
	Params map[string]string

	named bool
}

func newError(code Code, subject string, params map[string]string) *ValidationError {
	return &ValidationError{Code: code, Field: subject, Path: "/", Params: params}
}

// Message renders the description in English.
func (e *ValidationError) Message() string { return e.Localize(i18n.English()) }

// Localize renders the description with tr.
func (e *ValidationError) Localize(tr i18n.Translator) string {
	data := make(map[string]string, len(e.Params)+1)
	for k, v := range e.Params {
		data[k] = v
	}
	data["field"] = e.Field
	return tr.Message(strconv.Itoa(int(e.Code)), data)
}

func (e *ValidationError) Error() string {
	if e.Path == "" || e.Path == "/" {
		return fmt.Sprintf("%s (code %d)", e.Message(), e.Code)
	}
	return fmt.Sprintf("%s (code %d) at %s", e.Message(), e.Code, e.Path)
}

// AsValidationError extracts a ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CodeOf returns the validation code carried by err, or 0.
func CodeOf(err error) Code {
	if ve, ok := AsValidationError(err); ok {
		return ve.Code
	}
	return 0
}

// At re-roots err under the named field. The first field applied to a leaf
// error becomes the subject of its message. Errors that are not
// ValidationErrors pass through unchanged.
func At(field string, err error) error {
	if err == nil {
		return nil
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	out := *ve
	if !out.named {
		out.Field = field
		out.named = true
	}
	out.Path = pathRef{}.Field(field).Join(ve.Path)
	return &out
}

// AtIndex re-roots err under element i of the repeated field.
func AtIndex(field string, i int, err error) error {
	if err == nil {
		return nil
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	out := *ve
	if !out.named {
		out.Field = field
		out.named = true
	}
	out.Path = pathRef{}.Field(field).Index(i).Join(ve.Path)
	return &out
}
