// Package bizmsg handles business messages: a business application header
// (AppHdr) travelling with one Document, as FedNow exchanges them.
package bizmsg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	iso "github.com/open-payments/iso20022"
	"github.com/open-payments/iso20022/head"
)

// DefaultWrapper is the element name used when an Envelope has none.
const DefaultWrapper = "BusinessMessage"

// ErrNoDocument is returned when the input carries no Document element.
var ErrNoDocument = errors.New("bizmsg: no Document element")

// Envelope is an optional header plus a Document. Wrapper is the name of the
// element that directly contains them (e.g. FedNowCustomerCreditTransfer).
type Envelope struct {
	Wrapper  string
	Header   *head.BusinessApplicationHeaderV02
	Document iso.Document
}

// Validate checks the header before the document and reports the first
// violation, rooted at AppHdr or Document.
func (e Envelope) Validate() error {
	return iso.Fields(
		iso.Optional("AppHdr", e.Header),
		iso.Required("Document", e.Document),
	)
}

// Parse decodes an envelope from data. See Decode.
func Parse(reg *iso.Registry, data []byte) (Envelope, error) {
	return Decode(reg, bytes.NewReader(data))
}

// Decode finds the first AppHdr and the first Document at any depth. Other
// elements (technical headers, outer wrappers) are walked through or skipped.
// A Document of a kind reg does not know yields the Unknown sentinel.
func Decode(reg *iso.Registry, r io.Reader) (Envelope, error) {
	var env Envelope
	d := xml.NewDecoder(r)
	var stack []string
	found := false
	for !found {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Envelope{}, fmt.Errorf("bizmsg: decode: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "AppHdr":
				if env.Header != nil {
					if err := d.Skip(); err != nil {
						return Envelope{}, fmt.Errorf("bizmsg: decode: %w", err)
					}
					continue
				}
				var h head.BusinessApplicationHeaderV02
				if err := d.DecodeElement(&h, &t); err != nil {
					return Envelope{}, fmt.Errorf("bizmsg: decode AppHdr: %w", err)
				}
				env.Header = &h
				if len(stack) > 0 {
					env.Wrapper = stack[len(stack)-1]
				}
			case "Document":
				doc, err := reg.DecodeElement(d, t)
				if err != nil {
					return Envelope{}, err
				}
				env.Document = doc
				if len(stack) > 0 {
					env.Wrapper = stack[len(stack)-1]
				}
				found = true
			default:
				stack = append(stack, t.Name.Local)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if !found {
		return Envelope{}, ErrNoDocument
	}
	return env, nil
}

// MarshalXML writes <Wrapper><AppHdr xmlns=...>...</AppHdr><Document xmlns=...>
// ...</Document></Wrapper>.
func (e Envelope) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	name := e.Wrapper
	if name == "" {
		name = DefaultWrapper
	}
	wrapper := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(wrapper); err != nil {
		return err
	}
	if e.Header != nil {
		if err := enc.Encode(iso.NewDocument(e.Header)); err != nil {
			return fmt.Errorf("bizmsg: encode AppHdr: %w", err)
		}
	}
	if err := enc.Encode(e.Document); err != nil {
		return fmt.Errorf("bizmsg: encode Document: %w", err)
	}
	return enc.EncodeToken(wrapper.End())
}

// WriteXML writes e with an XML declaration.
func (e Envelope) WriteXML(w io.Writer, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}
