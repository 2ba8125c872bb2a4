package iso20022

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownDocument is returned when encoding the Unknown sentinel.
var ErrUnknownDocument = errors.New("iso20022: unknown document type")

// Standalone is implemented by messages that travel as their own root element
// instead of inside a Document wrapper (the business application header).
type Standalone interface {
	Message
	Standalone()
}

// MarshalXML writes <Document xmlns="urn:iso:std:iso:20022:tech:xsd:ID"><Root>
// ...</Root></Document>. Standalone messages are written as the root element
// carrying the namespace directly.
func (d Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if d.msg == nil {
		return ErrUnknownDocument
	}
	nsAttr := xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: Namespace(d.msg.MessageID())}
	root := xml.StartElement{Name: xml.Name{Local: d.msg.RootElement()}}
	if _, ok := d.msg.(Standalone); ok {
		root.Attr = []xml.Attr{nsAttr}
		return e.EncodeElement(d.msg, root)
	}
	wrapper := xml.StartElement{Name: xml.Name{Local: "Document"}, Attr: []xml.Attr{nsAttr}}
	if err := e.EncodeToken(wrapper); err != nil {
		return err
	}
	if err := e.EncodeElement(d.msg, root); err != nil {
		return err
	}
	return e.EncodeToken(wrapper.End())
}

// WriteXML writes d with an XML declaration, indenting with indent when it is
// not empty.
func (d Document) WriteXML(w io.Writer, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("iso20022: encode %s: %w", d.MessageID(), err)
	}
	return enc.Close()
}

// ParseXML decodes a Document from data. See DecodeXML.
func (r *Registry) ParseXML(data []byte) (Document, error) {
	return r.DecodeXML(bytes.NewReader(data))
}

// DecodeXML reads the first element of rd. A kind the registry does not know
// yields Unknown with a nil error; malformed XML is an error.
func (r *Registry) DecodeXML(rd io.Reader) (Document, error) {
	d := xml.NewDecoder(rd)
	start, ok, err := nextStart(d)
	if err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
	}
	if !ok {
		return Unknown(), nil
	}
	return r.DecodeElement(d, start)
}

// DecodeElement decodes the already consumed start element, either a Document
// wrapper or a standalone root, and consumes its end element.
func (r *Registry) DecodeElement(d *xml.Decoder, start xml.StartElement) (Document, error) {
	if start.Name.Local != "Document" {
		return r.decodeRoot(d, start)
	}
	root, ok, err := nextStart(d)
	if err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
	}
	if !ok {
		return Unknown(), nil
	}
	doc, err := r.decodeRoot(d, root)
	if err != nil {
		return Unknown(), err
	}
	if err := d.Skip(); err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
	}
	return doc, nil
}

func (r *Registry) decodeRoot(d *xml.Decoder, root xml.StartElement) (Document, error) {
	k, ok := r.Resolve(root.Name.Space, root.Name.Local)
	if !ok {
		if err := d.Skip(); err != nil {
			return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
		}
		return Unknown(), nil
	}
	msg := k.New()
	if err := d.DecodeElement(msg, &root); err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode %s: %w", k.ID, err)
	}
	return NewDocument(msg), nil
}

// nextStart returns the next start element at the current depth. ok is false
// when an end element or EOF comes first.
func nextStart(d *xml.Decoder) (xml.StartElement, bool, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, false, nil
		}
		if err != nil {
			return xml.StartElement{}, false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, true, nil
		case xml.EndElement:
			return xml.StartElement{}, false, nil
		}
	}
}
