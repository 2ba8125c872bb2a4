package admi

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// ReceiptAcknowledgementV01 is admi.007.001.01.
type ReceiptAcknowledgementV01 struct {
	MsgId       MessageHeader10                 `xml:"MsgId" json:"MsgId"`
	Rpt         []ReceiptAcknowledgementReport2 `xml:"Rpt" json:"Rpt"`
	SplmtryData []dt.SupplementaryData1         `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (ReceiptAcknowledgementV01) MessageID() string   { return "admi.007.001.01" }
func (ReceiptAcknowledgementV01) RootElement() string { return "RctAck" }

func (m ReceiptAcknowledgementV01) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", m.MsgId),
		iso.Repeated("Rpt", m.Rpt),
		iso.Repeated("SplmtryData", m.SplmtryData),
	)
}

type MessageHeader10 struct {
	MsgId   dt.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *dt.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	QryNm   *dt.Max35Text   `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
}

func (h MessageHeader10) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", h.MsgId),
		iso.Optional("QryNm", h.QryNm),
	)
}

type ReceiptAcknowledgementReport2 struct {
	RltdRef MessageReference1 `xml:"RltdRef" json:"RltdRef"`
	ReqHdlg RequestHandling3  `xml:"ReqHdlg" json:"ReqHdlg"`
}

func (r ReceiptAcknowledgementReport2) Validate() error {
	return iso.Fields(
		iso.Required("RltdRef", r.RltdRef),
		iso.Required("ReqHdlg", r.ReqHdlg),
	)
}

type MessageReference1 struct {
	Ref   dt.Max35Text  `xml:"Ref" json:"Ref"`
	MsgNm *dt.Max35Text `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
}

func (m MessageReference1) Validate() error {
	return iso.Fields(
		iso.Required("Ref", m.Ref),
		iso.Optional("MsgNm", m.MsgNm),
	)
}

type RequestHandling3 struct {
	StsCd   dt.Max4AlphaNumericText    `xml:"StsCd" json:"StsCd"`
	StsDtTm *dt.DateAndDateTime2Choice `xml:"StsDtTm,omitempty" json:"StsDtTm,omitempty"`
	Desc    *dt.Max140Text             `xml:"Desc,omitempty" json:"Desc,omitempty"`
}

func (r RequestHandling3) Validate() error {
	return iso.Fields(
		iso.Required("StsCd", r.StsCd),
		iso.Optional("StsDtTm", r.StsDtTm),
		iso.Optional("Desc", r.Desc),
	)
}
