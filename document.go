package iso20022

import "strings"

// NamespacePrefix prefixes every ISO 20022 message namespace.
const NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// Message is a top-level ISO 20022 message.
type Message interface {
	Validator
	// MessageID is the message definition identifier, e.g. pacs.008.001.08.
	MessageID() string
	// RootElement is the element directly below Document, e.g. FIToFICstmrCdtTrf.
	RootElement() string
}

// Namespace returns the XML namespace of a message definition identifier.
func Namespace(id string) string { return NamespacePrefix + id }

// MessageIDFromNamespace extracts the message definition identifier from an
// ISO 20022 namespace.
func MessageIDFromNamespace(ns string) (string, bool) {
	if !strings.HasPrefix(ns, NamespacePrefix) || len(ns) == len(NamespacePrefix) {
		return "", false
	}
	return ns[len(NamespacePrefix):], true
}

// Document is the envelope of exactly one message, or the Unknown sentinel
// when the message kind is not recognized. The zero value is Unknown.
type Document struct {
	msg Message
}

// NewDocument wraps m. A nil message yields Unknown.
func NewDocument(m Message) Document {
	if isNil(m) {
		return Document{}
	}
	return Document{msg: m}
}

// Unknown returns the unrecognized-document sentinel.
func Unknown() Document { return Document{} }

// Known reports whether the Document holds a message.
func (d Document) Known() bool { return d.msg != nil }

// Message returns the active message, or nil for Unknown.
func (d Document) Message() Message { return d.msg }

// MessageID returns the active message definition identifier, or "".
func (d Document) MessageID() string {
	if d.msg == nil {
		return ""
	}
	return d.msg.MessageID()
}

// Validate delegates to the active message. Unknown always fails with
// CodeUnknownDocument.
func (d Document) Validate() error {
	if d.msg == nil {
		return newError(CodeUnknownDocument, "Document", nil)
	}
	return d.msg.Validate()
}
