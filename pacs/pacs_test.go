package pacs_test

import (
	"bytes"
	"strings"
	"testing"

	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
	"github.com/open-payments/iso20022/pacs"
)

func ptr[T any](v T) *T { return &v }

func agent(member string) dt.BranchAndFinancialInstitutionIdentification6 {
	sys := dt.ClearingSystemCode("USABA")
	return dt.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: dt.FinancialInstitutionIdentification18{
			ClrSysMmbId: &dt.ClearingSystemMemberIdentification2{
				ClrSysId: &dt.ClearingSystemIdentification2Choice{Value: &sys},
				MmbId:    dt.Max35Text(member),
			},
		},
	}
}

func creditTransfer() *pacs.FIToFICustomerCreditTransferV08 {
	iban := dt.AccountIBAN("DE89370400440532013000")
	return &pacs.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs.GroupHeader93{
			MsgId:    "20240501021000021FEDNOW0001",
			CreDtTm:  "2024-05-01T10:11:12Z",
			NbOfTxs:  "1",
			SttlmInf: pacs.SettlementInstruction7{SttlmMtd: dt.SettlementClearing},
		},
		CdtTrfTxInf: []pacs.CreditTransferTransaction39{{
			PmtId: pacs.PaymentIdentification7{
				EndToEndId: "E2E-0001",
				UETR:       ptr(dt.UUIDv4Identifier("8a562c67-ca16-48ba-b074-65581be6f001")),
			},
			IntrBkSttlmAmt: dt.ActiveCurrencyAndAmount{Ccy: "USD", Value: 125.5},
			IntrBkSttlmDt:  ptr(dt.ISODate("2024-05-01")),
			ChrgBr:         dt.ChargeBearerServiceLevel,
			Dbtr: dt.PartyIdentification135{
				Nm:      ptr(dt.Max140Text("Jane Smith")),
				PstlAdr: &dt.PostalAddress24{Ctry: ptr(dt.CountryCode("US"))},
			},
			DbtrAcct: &dt.CashAccount38{Id: dt.AccountIdentification4Choice{Value: &iban}},
			DbtrAgt:  agent("011000015"),
			CdtrAgt:  agent("021000021"),
			Cdtr:     dt.PartyIdentification135{Nm: ptr(dt.Max140Text("John Doe"))},
			RmtInf:   &pacs.RemittanceInformation16{Ustrd: []dt.Max140Text{"Invoice 42"}},
		}},
	}
}

func TestCreditTransfer_Valid(t *testing.T) {
	if err := creditTransfer().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreditTransfer_NestedCountry(t *testing.T) {
	m := creditTransfer()
	m.CdtTrfTxInf[0].Dbtr.PstlAdr.Ctry = ptr(dt.CountryCode("usa"))
	ve, ok := iso.AsValidationError(m.Validate())
	if !ok {
		t.Fatalf("expected validation error")
	}
	if ve.Code != iso.CodePattern || ve.Path != "/CdtTrfTxInf/0/Dbtr/PstlAdr/Ctry" {
		t.Fatalf("unexpected error: %v", ve)
	}
	if ve.Message() != "Ctry does not match the required pattern" {
		t.Fatalf("unexpected message: %q", ve.Message())
	}
}

func TestCreditTransfer_NegativeAmount(t *testing.T) {
	m := creditTransfer()
	m.CdtTrfTxInf[0].IntrBkSttlmAmt.Value = -0.01
	ve, ok := iso.AsValidationError(m.Validate())
	if !ok {
		t.Fatalf("expected validation error")
	}
	if ve.Code != iso.CodeBelowMinimum || ve.Path != "/CdtTrfTxInf/0/IntrBkSttlmAmt" {
		t.Fatalf("unexpected error: %v", ve)
	}
}

func TestCreditTransfer_ChargeBearer(t *testing.T) {
	m := creditTransfer()
	m.CdtTrfTxInf[0].ChrgBr = "SLEV "
	if got := iso.CodeOf(m.Validate()); got != iso.CodeInvalidEnum {
		t.Fatalf("expected %d, got %d", iso.CodeInvalidEnum, got)
	}
}

func TestCreditTransfer_HeaderFirst(t *testing.T) {
	m := creditTransfer()
	m.GrpHdr.NbOfTxs = "one"
	m.CdtTrfTxInf[0].ChrgBr = "XXXX"
	ve, ok := iso.AsValidationError(m.Validate())
	if !ok || ve.Path != "/GrpHdr/NbOfTxs" {
		t.Fatalf("expected the header error first, got %v", ve)
	}
}

func TestCreditTransfer_XMLRoundTrip(t *testing.T) {
	reg := iso.MustRegistry(pacs.Kinds()...)
	var buf bytes.Buffer
	if err := iso.NewDocument(creditTransfer()).WriteXML(&buf, "  "); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">`,
		`<IntrBkSttlmAmt Ccy="USD">125.5</IntrBkSttlmAmt>`,
		`<IBAN>DE89370400440532013000</IBAN>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in:\n%s", want, out)
		}
	}
	doc, err := reg.ParseXML(buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, ok := doc.Message().(*pacs.FIToFICustomerCreditTransferV08)
	if !ok {
		t.Fatalf("unexpected message %T", doc.Message())
	}
	tx := got.CdtTrfTxInf[0]
	if tx.IntrBkSttlmAmt.Value != 125.5 || tx.IntrBkSttlmAmt.Ccy != "USD" {
		t.Fatalf("amount lost: %+v", tx.IntrBkSttlmAmt)
	}
	if tx.DbtrAcct == nil || tx.DbtrAcct.Id.Tag() != "IBAN" {
		t.Fatalf("account choice lost: %+v", tx.DbtrAcct)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("decoded message invalid: %v", err)
	}
}

func TestCreditTransfer_JSONRoundTrip(t *testing.T) {
	reg := iso.MustRegistry(pacs.Kinds()...)
	data, err := iso.NewDocument(creditTransfer()).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(data, []byte(`"IntrBkSttlmAmt":{"Ccy":"USD","Value":125.5}`)) {
		t.Fatalf("unexpected amount shape: %s", data)
	}
	doc, err := reg.DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.MessageID() != "pacs.008.001.08" {
		t.Fatalf("unexpected kind %q", doc.MessageID())
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("decoded message invalid: %v", err)
	}
}

func statusReport() *pacs.FIToFIPaymentStatusReportV10 {
	sts := pacs.StatusRejected
	rsn := dt.Code("AC04")
	return &pacs.FIToFIPaymentStatusReportV10{
		GrpHdr: pacs.GroupHeader91{MsgId: "STS-0001", CreDtTm: "2024-05-01T10:11:13Z"},
		TxInfAndSts: []pacs.PaymentTransaction110{{
			OrgnlGrpInf: &pacs.OriginalGroupInformation29{
				OrgnlMsgId:   "20240501021000021FEDNOW0001",
				OrgnlMsgNmId: "pacs.008.001.08",
			},
			OrgnlEndToEndId: ptr(dt.Max35Text("E2E-0001")),
			TxSts:           &sts,
			StsRsnInf: []pacs.StatusReasonInformation12{{
				Rsn: &dt.CodeChoice{Value: &rsn},
			}},
		}},
	}
}

func TestStatusReport_Valid(t *testing.T) {
	if err := statusReport().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatusReport_ReasonCode(t *testing.T) {
	m := statusReport()
	rsn := dt.Code("AC04X")
	m.TxInfAndSts[0].StsRsnInf[0].Rsn = &dt.CodeChoice{Value: &rsn}
	ve, ok := iso.AsValidationError(m.Validate())
	if !ok {
		t.Fatalf("expected validation error")
	}
	if ve.Code != iso.CodeTooLong || ve.Path != "/TxInfAndSts/0/StsRsnInf/0/Rsn/Cd" {
		t.Fatalf("unexpected error: %v", ve)
	}
	if ve.Field != "Cd" {
		t.Fatalf("expected innermost field Cd, got %q", ve.Field)
	}
}

func TestKinds_Registry(t *testing.T) {
	reg, err := iso.NewRegistry(pacs.Kinds()...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	for _, root := range []string{"FIToFIPmtStsRpt", "FIToFICstmrCdtTrf"} {
		k, ok := reg.LookupRoot(root)
		if !ok {
			t.Fatalf("root %s not found", root)
		}
		if k.New().RootElement() != root {
			t.Fatalf("kind %s builds the wrong message", k.ID)
		}
	}
}
