package iso20022_test

import (
	"bytes"
	"strings"
	"testing"

	iso "github.com/open-payments/iso20022"
)

func TestDocument_UnknownAlwaysFailsWithSentinel(t *testing.T) {
	for name, d := range map[string]iso.Document{
		"zero":      {},
		"unknown":   iso.Unknown(),
		"nil":       iso.NewDocument(nil),
		"typed nil": iso.NewDocument((*testMsg)(nil)),
	} {
		if d.Known() {
			t.Fatalf("%s: expected unknown", name)
		}
		err := d.Validate()
		ve, ok := iso.AsValidationError(err)
		if !ok || ve.Code != iso.CodeUnknownDocument {
			t.Fatalf("%s: expected sentinel, got %v", name, err)
		}
		if ve.Message() != "Unknown document type" {
			t.Fatalf("%s: unexpected message %q", name, ve.Message())
		}
	}
}

func TestDocument_DispatchIsTransparent(t *testing.T) {
	bad := validMsg()
	bad.Pty.PstlAdr.AdrLine = []text35{""}
	for _, m := range []testMsg{validMsg(), bad} {
		want := m.Validate()
		got := iso.NewDocument(m).Validate()
		if (want == nil) != (got == nil) {
			t.Fatalf("dispatch changed outcome: %v vs %v", want, got)
		}
		if want != nil && want.Error() != got.Error() {
			t.Fatalf("dispatch changed error: %v vs %v", want, got)
		}
	}
}

func TestRegistry_RejectsDuplicatesAndIncompleteKinds(t *testing.T) {
	k := iso.Kind{ID: "test.001.001.01", Root: "TstMsg", New: func() iso.Message { return &testMsg{} }}
	if _, err := iso.NewRegistry(k, k); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := iso.NewRegistry(iso.Kind{ID: "x"}); err == nil {
		t.Fatalf("expected incomplete kind error")
	}
}

func TestRegistry_AmbiguousRootNeedsNamespace(t *testing.T) {
	reg := iso.MustRegistry(
		iso.Kind{ID: "test.001.001.01", Root: "TstMsg", New: func() iso.Message { return &testMsg{} }},
		iso.Kind{ID: "test.001.001.02", Root: "TstMsg", New: func() iso.Message { return &testMsgV2{} }},
	)
	if _, ok := reg.LookupRoot("TstMsg"); ok {
		t.Fatalf("ambiguous root must not resolve")
	}
	k, ok := reg.Resolve(iso.Namespace("test.001.001.02"), "TstMsg")
	if !ok || k.ID != "test.001.001.02" {
		t.Fatalf("namespace must select the version, got %+v", k)
	}
	if _, ok := reg.Resolve(iso.Namespace("test.001.001.02"), "Other"); ok {
		t.Fatalf("root mismatch must not resolve")
	}
	if got := reg.Kinds(); len(got) != 2 || got[0].ID != "test.001.001.01" || got[0].Family() != "test" {
		t.Fatalf("unexpected kinds: %+v", got)
	}
}

func TestDocument_XMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := iso.NewDocument(validMsg()).WriteXML(&buf, "  "); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:test.001.001.01">`) {
		t.Fatalf("missing namespace: %s", buf.String())
	}
	doc, err := testRegistry().DecodeXML(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.MessageID() != "test.001.001.01" {
		t.Fatalf("unexpected kind %q", doc.MessageID())
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("round-tripped document invalid: %v", err)
	}
	m := doc.Message().(*testMsg)
	if m.Pty.Id == nil || m.Pty.Id.Tag() != "LEI" {
		t.Fatalf("choice lost: %+v", m.Pty)
	}
}

func TestDocument_XMLUnknownKindIsSentinel(t *testing.T) {
	reg := testRegistry()
	for _, in := range []string{
		`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.999.001.01"><TstMsg/></Document>`,
		`<Document><Nope/></Document>`,
		`<Document/>`,
		``,
	} {
		doc, err := reg.ParseXML([]byte(in))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if iso.CodeOf(doc.Validate()) != iso.CodeUnknownDocument {
			t.Fatalf("%q: expected sentinel", in)
		}
	}
}

func TestDocument_XMLWithoutNamespaceUsesRoot(t *testing.T) {
	doc, err := testRegistry().ParseXML([]byte(`<Document><TstMsg><MsgId>A</MsgId><Pty><PstlAdr><Ctry>DE</Ctry></PstlAdr></Pty></TstMsg></Document>`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !doc.Known() || doc.Validate() != nil {
		t.Fatalf("expected valid known document, got %v", doc.Validate())
	}
}

func TestDocument_MalformedXMLIsError(t *testing.T) {
	if _, err := testRegistry().ParseXML([]byte(`<Document><TstMsg>`)); err == nil {
		t.Fatalf("expected error for truncated xml")
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	b, err := iso.NewDocument(validMsg()).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"xmlns":"urn:iso:std:iso:20022:tech:xsd:test.001.001.01"`) {
		t.Fatalf("missing namespace: %s", b)
	}
	doc, err := testRegistry().DecodeJSON(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("round-tripped document invalid: %v", err)
	}
	if _, err := iso.Unknown().MarshalJSON(); err == nil {
		t.Fatalf("unknown must not encode")
	}
	unknown, err := testRegistry().DecodeJSON([]byte(`{"Other":{}}`))
	if err != nil || unknown.Known() {
		t.Fatalf("expected unknown without error, got %v", err)
	}
}
