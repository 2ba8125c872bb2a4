package codec

import (
	"bytes"
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	iso "github.com/open-payments/iso20022"
)

// XML returns a Codec between XML bytes and Documents resolved through reg.
// Encoding writes an XML declaration and indents with indent when it is not
// empty.
func XML(reg *iso.Registry, indent string) Codec[[]byte, iso.Document] {
	return xmlCodec{reg: reg, indent: indent}
}

// JSON returns a Codec between the JSON envelope form and Documents.
func JSON(reg *iso.Registry, indent string) Codec[[]byte, iso.Document] {
	return jsonCodec{reg: reg, indent: indent}
}

type xmlCodec struct {
	reg    *iso.Registry
	indent string
}

func (c xmlCodec) Decode(ctx context.Context, a []byte) (iso.Document, error) {
	if err := ctx.Err(); err != nil {
		return iso.Unknown(), err
	}
	return c.reg.ParseXML(a)
}

func (c xmlCodec) Encode(ctx context.Context, b iso.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := b.WriteXML(&buf, c.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonCodec struct {
	reg    *iso.Registry
	indent string
}

func (c jsonCodec) Decode(ctx context.Context, a []byte) (iso.Document, error) {
	if err := ctx.Err(); err != nil {
		return iso.Unknown(), err
	}
	return c.reg.DecodeJSON(a)
}

func (c jsonCodec) Encode(ctx context.Context, b iso.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.indent == "" {
		return json.Marshal(b)
	}
	return json.MarshalIndent(b, "", c.indent)
}

// Convert decodes data with from and re-encodes it with to. Documents of a
// kind the registry does not know cannot be converted.
func Convert(ctx context.Context, from, to Codec[[]byte, iso.Document], data []byte) ([]byte, error) {
	doc, err := from.Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("codec: convert: %w", err)
	}
	if !doc.Known() {
		return nil, fmt.Errorf("codec: convert: %w", iso.ErrUnknownDocument)
	}
	out, err := to.Encode(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("codec: convert %s: %w", doc.MessageID(), err)
	}
	return out, nil
}
