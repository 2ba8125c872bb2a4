package iso20022

import (
	"encoding/xml"
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// Alternative is one arm of a choice group. ChoiceTag is the element name
// that selects it on the wire.
type Alternative interface {
	Validator
	ChoiceTag() string
}

// Alternatives describes the closed set of arms of a choice group. New returns
// a pointer to a fresh alternative for a wire tag.
type Alternatives[A Alternative] interface {
	Group() string
	New(tag string) (A, bool)
}

// Choice holds exactly one alternative of a choice group. Groups are declared
// as aliases, for example:
//
//	type Party38Choice = iso20022.Choice[Party38, party38Alternatives]
//
// An optional group is a nil *Choice at the parent.
type Choice[A Alternative, G Alternatives[A]] struct {
	Value A
}

// Group returns the choice group name.
func (c Choice[A, G]) Group() string {
	var g G
	return g.Group()
}

// Tag returns the element name of the selected alternative, or "" when empty.
func (c Choice[A, G]) Tag() string {
	if isNil(c.Value) {
		return ""
	}
	return c.Value.ChoiceTag()
}

// Validate fails with CodeChoice when no alternative is selected and
// otherwise validates the selected one.
func (c Choice[A, G]) Validate() error {
	if isNil(c.Value) {
		return newError(CodeChoice, c.Group(), nil)
	}
	return At(c.Value.ChoiceTag(), c.Value.Validate())
}

func (c Choice[A, G]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if isNil(c.Value) {
		return fmt.Errorf("iso20022: choice %s has no alternative", c.Group())
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	inner := xml.StartElement{Name: xml.Name{Local: c.Value.ChoiceTag()}}
	if err := e.EncodeElement(c.Value, inner); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func (c *Choice[A, G]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var g G
	var zero A
	c.Value = zero
	set := false
	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("iso20022: choice %s: %w", g.Group(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if set {
				return fmt.Errorf("iso20022: choice %s: more than one alternative (%s)", g.Group(), t.Name.Local)
			}
			alt, ok := g.New(t.Name.Local)
			if !ok {
				return fmt.Errorf("iso20022: choice %s: unknown alternative %q", g.Group(), t.Name.Local)
			}
			if err := d.DecodeElement(alt, &t); err != nil {
				return err
			}
			c.Value = alt
			set = true
		case xml.EndElement:
			return nil
		}
	}
}

func (c Choice[A, G]) MarshalJSON() ([]byte, error) {
	if isNil(c.Value) {
		return nil, fmt.Errorf("iso20022: choice %s has no alternative", c.Group())
	}
	return json.Marshal(map[string]any{c.Value.ChoiceTag(): c.Value})
}

func (c *Choice[A, G]) UnmarshalJSON(data []byte) error {
	var g G
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("iso20022: choice %s: %w", g.Group(), err)
	}
	switch len(raw) {
	case 0:
		// Present but empty: decodes, then fails validation like an empty
		// XML element.
		var zero A
		c.Value = zero
		return nil
	case 1:
	default:
		return fmt.Errorf("iso20022: choice %s: expected one alternative, got %d", g.Group(), len(raw))
	}
	for tag, body := range raw {
		alt, ok := g.New(tag)
		if !ok {
			return fmt.Errorf("iso20022: choice %s: unknown alternative %q", g.Group(), tag)
		}
		if err := json.Unmarshal(body, alt); err != nil {
			return fmt.Errorf("iso20022: choice %s: %w", g.Group(), err)
		}
		c.Value = alt
	}
	return nil
}

// isNil reports whether v is nil or a typed nil reference.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
