package iso20022_test

import (
	"errors"
	"strings"
	"testing"

	iso "github.com/open-payments/iso20022"
)

func TestValidate_ValidMessage(t *testing.T) {
	if err := validMsg().Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestValidate_NestedLeafErrorKeepsItsIdentity(t *testing.T) {
	m := validMsg()
	m.Pty.PstlAdr.Ctry = ""
	err := m.Validate()
	ve, ok := iso.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Code != iso.CodePattern {
		t.Fatalf("expected pattern code, got %d", ve.Code)
	}
	if ve.Path != "/Pty/PstlAdr/Ctry" {
		t.Fatalf("unexpected path: %s", ve.Path)
	}
	if ve.Message() != "Ctry does not match the required pattern" {
		t.Fatalf("unexpected message: %q", ve.Message())
	}
}

func TestValidate_FailFastInDeclarationOrder(t *testing.T) {
	m := validMsg()
	m.MsgId = text35(strings.Repeat("x", 36))
	m.Pty.PstlAdr.Ctry = "usa"
	ve, _ := iso.AsValidationError(m.Validate())
	if ve == nil || ve.Path != "/MsgId" || ve.Code != iso.CodeTooLong {
		t.Fatalf("expected first declared field to fail, got %+v", ve)
	}
}

func TestValidate_FieldsStopsAtFirstFailure(t *testing.T) {
	ran := false
	err := iso.Fields(
		iso.Required("A", text35("")),
		func() error { ran = true; return nil },
	)
	if err == nil || ran {
		t.Fatalf("later checks must not run after a failure (err=%v ran=%v)", err, ran)
	}
}

func TestValidate_OptionalAbsentIsNotAnError(t *testing.T) {
	m := validMsg()
	m.Pty.Nm = nil
	m.Pty.Id = nil
	if err := m.Validate(); err != nil {
		t.Fatalf("absent optionals must pass: %v", err)
	}
	m.Pty.Nm = ptr(text35(""))
	ve, _ := iso.AsValidationError(m.Validate())
	if ve == nil || ve.Path != "/Pty/Nm" || ve.Code != iso.CodeTooShort {
		t.Fatalf("present optional must be validated, got %+v", ve)
	}
}

func TestValidate_RepeatedReportsIndex(t *testing.T) {
	m := validMsg()
	m.Pty.PstlAdr.AdrLine = []text35{"ok", "", "also bad"}
	ve, _ := iso.AsValidationError(m.Validate())
	if ve == nil || ve.Path != "/Pty/PstlAdr/AdrLine/1" {
		t.Fatalf("unexpected error: %+v", ve)
	}
	if ve.Message() != "AdrLine is shorter than the minimum length of 1" {
		t.Fatalf("unexpected message: %q", ve.Message())
	}
}

func TestValidate_Idempotent(t *testing.T) {
	m := validMsg()
	m.Pty.PstlAdr.Ctry = "us"
	first := m.Validate()
	second := m.Validate()
	if first == nil || second == nil {
		t.Fatalf("expected failures")
	}
	if first.Error() != second.Error() || iso.CodeOf(first) != iso.CodeOf(second) {
		t.Fatalf("results differ: %v vs %v", first, second)
	}
}

func TestAt_PassesForeignErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	if got := iso.At("X", boom); got != boom {
		t.Fatalf("foreign error must pass through, got %v", got)
	}
	if iso.At("X", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestAt_EscapesPointerSegments(t *testing.T) {
	err := iso.At("a/b~c", text35("").Validate())
	ve, _ := iso.AsValidationError(err)
	if ve.Path != "/a~1b~0c" {
		t.Fatalf("unexpected path: %s", ve.Path)
	}
}

func TestValidationError_ErrorString(t *testing.T) {
	m := validMsg()
	m.MsgId = ""
	got := m.Validate().Error()
	want := "MsgId is shorter than the minimum length of 1 (code 1001) at /MsgId"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
