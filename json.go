package iso20022

import (
	"fmt"

	json "github.com/goccy/go-json"
)

const jsonNamespaceKey = "xmlns"

// MarshalJSON writes {"xmlns": "urn:...:ID", "<Root>": {...}}.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.msg == nil {
		return nil, ErrUnknownDocument
	}
	body, err := json.Marshal(d.msg)
	if err != nil {
		return nil, fmt.Errorf("iso20022: encode %s: %w", d.msg.MessageID(), err)
	}
	return json.Marshal(map[string]json.RawMessage{
		jsonNamespaceKey:     mustQuote(Namespace(d.msg.MessageID())),
		d.msg.RootElement(): body,
	})
}

// DecodeJSON decodes the JSON form written by Document.MarshalJSON. The
// namespace key is optional when the root element is unambiguous. Repeated
// keys anywhere in data fail with ErrDuplicateKey. A kind the
// registry does not know yields Unknown with a nil error.
func (r *Registry) DecodeJSON(data []byte) (Document, error) {
	if err := checkDuplicateKeys(data); err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Unknown(), fmt.Errorf("iso20022: decode document: %w", err)
	}
	var ns string
	if v, ok := raw[jsonNamespaceKey]; ok {
		if err := json.Unmarshal(v, &ns); err != nil {
			return Unknown(), fmt.Errorf("iso20022: decode document namespace: %w", err)
		}
		delete(raw, jsonNamespaceKey)
	}
	switch len(raw) {
	case 0:
		return Unknown(), nil
	case 1:
	default:
		return Unknown(), fmt.Errorf("iso20022: decode document: expected one root element, got %d", len(raw))
	}
	for root, body := range raw {
		k, ok := r.Resolve(ns, root)
		if !ok {
			return Unknown(), nil
		}
		msg := k.New()
		if err := json.Unmarshal(body, msg); err != nil {
			return Unknown(), fmt.Errorf("iso20022: decode %s: %w", k.ID, err)
		}
		return NewDocument(msg), nil
	}
	return Unknown(), nil
}

func mustQuote(s string) json.RawMessage {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return b
}
