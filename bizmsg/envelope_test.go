package bizmsg_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	iso "github.com/open-payments/iso20022"
	"github.com/open-payments/iso20022/bizmsg"
	"github.com/open-payments/iso20022/catalog"
	dt "github.com/open-payments/iso20022/datatype"
	"github.com/open-payments/iso20022/head"
	"github.com/open-payments/iso20022/pacs"
)

const fednow = `<?xml version="1.0" encoding="UTF-8"?>
<FedNowIncoming>
  <FedNowTechnicalHeader><Seq>1</Seq></FedNowTechnicalHeader>
  <FedNowIncomingMessage>
    <FedNowPaymentStatus>
      <AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">
        <Fr><FIId><FinInstnId><ClrSysMmbId><ClrSysId><Cd>USABA</Cd></ClrSysId><MmbId>011000015</MmbId></ClrSysMmbId></FinInstnId></FIId></Fr>
        <To><FIId><FinInstnId><ClrSysMmbId><ClrSysId><Cd>USABA</Cd></ClrSysId><MmbId>021000021</MmbId></ClrSysMmbId></FinInstnId></FIId></To>
        <BizMsgIdr>STS-0001</BizMsgIdr>
        <MsgDefIdr>pacs.002.001.10</MsgDefIdr>
        <CreDt>2024-05-01T10:11:13Z</CreDt>
      </AppHdr>
      <Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.002.001.10">
        <FIToFIPmtStsRpt>
          <GrpHdr><MsgId>STS-0001</MsgId><CreDtTm>2024-05-01T10:11:13Z</CreDtTm></GrpHdr>
          <TxInfAndSts><OrgnlEndToEndId>E2E-0001</OrgnlEndToEndId><TxSts>ACSC</TxSts></TxInfAndSts>
        </FIToFIPmtStsRpt>
      </Document>
    </FedNowPaymentStatus>
  </FedNowIncomingMessage>
</FedNowIncoming>`

func TestDecode_FedNowWrapper(t *testing.T) {
	env, err := bizmsg.Parse(catalog.Registry(), []byte(fednow))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if env.Wrapper != "FedNowPaymentStatus" {
		t.Fatalf("unexpected wrapper %q", env.Wrapper)
	}
	if env.Header == nil || env.Header.MsgDefIdr != "pacs.002.001.10" {
		t.Fatalf("header lost: %+v", env.Header)
	}
	rpt, ok := env.Document.Message().(*pacs.FIToFIPaymentStatusReportV10)
	if !ok {
		t.Fatalf("unexpected message %T", env.Document.Message())
	}
	if rpt.TxInfAndSts[0].TxSts == nil || *rpt.TxInfAndSts[0].TxSts != pacs.StatusSettled {
		t.Fatalf("status lost: %+v", rpt.TxInfAndSts[0])
	}
	if err := env.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HeaderFirst(t *testing.T) {
	env, err := bizmsg.Parse(catalog.Registry(), []byte(fednow))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	env.Header.BizMsgIdr = ""
	rpt := env.Document.Message().(*pacs.FIToFIPaymentStatusReportV10)
	rpt.GrpHdr.MsgId = ""
	ve, ok := iso.AsValidationError(env.Validate())
	if !ok || ve.Path != "/AppHdr/BizMsgIdr" {
		t.Fatalf("expected the header error first, got %v", ve)
	}
	env.Header.BizMsgIdr = "STS-0001"
	ve, ok = iso.AsValidationError(env.Validate())
	if !ok || ve.Path != "/Document/GrpHdr/MsgId" {
		t.Fatalf("expected the document error, got %v", ve)
	}
}

func TestDecode_UnknownDocument(t *testing.T) {
	in := `<Msg><Document xmlns="urn:iso:std:iso:20022:tech:xsd:reda.002.001.04"><PricRptCxlReq/></Document></Msg>`
	env, err := bizmsg.Parse(catalog.Registry(), []byte(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if env.Document.Known() || env.Header != nil {
		t.Fatalf("expected Unknown without header, got %+v", env)
	}
	if iso.CodeOf(env.Validate()) != iso.CodeUnknownDocument {
		t.Fatalf("expected unknown document code")
	}
}

func TestDecode_NoDocument(t *testing.T) {
	_, err := bizmsg.Parse(catalog.Registry(), []byte(`<Msg><Other/></Msg>`))
	if !errors.Is(err, bizmsg.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestWriteXML_RoundTrip(t *testing.T) {
	sts := pacs.StatusRejected
	env := bizmsg.Envelope{
		Wrapper: "FedNowPaymentStatus",
		Header: &head.BusinessApplicationHeaderV02{
			Fr:        head.Agent("USABA", "011000015"),
			To:        head.Agent("USABA", "021000021"),
			BizMsgIdr: "STS-0002",
			MsgDefIdr: "pacs.002.001.10",
			CreDt:     "2024-05-01T10:11:13Z",
		},
		Document: iso.NewDocument(&pacs.FIToFIPaymentStatusReportV10{
			GrpHdr: pacs.GroupHeader91{MsgId: "STS-0002", CreDtTm: "2024-05-01T10:11:13Z"},
			TxInfAndSts: []pacs.PaymentTransaction110{{
				OrgnlTxId: func() *dt.Max35Text { v := dt.Max35Text("TX-1"); return &v }(),
				TxSts:     &sts,
			}},
		}),
	}
	var buf bytes.Buffer
	if err := env.WriteXML(&buf, "  "); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<FedNowPaymentStatus>") || !strings.Contains(out, `<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	back, err := bizmsg.Parse(catalog.Registry(), buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back.Header.BizMsgIdr != "STS-0002" || back.Document.MessageID() != "pacs.002.001.10" {
		t.Fatalf("round trip lost data: %+v", back)
	}
	if err := back.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
