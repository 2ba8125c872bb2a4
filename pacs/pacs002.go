package pacs

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

var (
	groupStatusRule       = iso.Text("ExternalPaymentGroupStatus1Code").Length(1, 4)
	transactionStatusRule = iso.Text("ExternalPaymentTransactionStatus1Code").Length(1, 4)
)

// ExternalPaymentTransactionStatus1Code is an externally listed status such
// as ACSC or RJCT.
type ExternalPaymentTransactionStatus1Code string

const (
	StatusAccepted           ExternalPaymentTransactionStatus1Code = "ACCP"
	StatusSettled            ExternalPaymentTransactionStatus1Code = "ACSC"
	StatusAcceptedWithChange ExternalPaymentTransactionStatus1Code = "ACWP"
	StatusPending            ExternalPaymentTransactionStatus1Code = "PDNG"
	StatusRejected           ExternalPaymentTransactionStatus1Code = "RJCT"
)

func (c ExternalPaymentTransactionStatus1Code) Validate() error {
	return transactionStatusRule.Check(string(c))
}

type ExternalPaymentGroupStatus1Code string

func (c ExternalPaymentGroupStatus1Code) Validate() error { return groupStatusRule.Check(string(c)) }

// FIToFIPaymentStatusReportV10 is pacs.002.001.10.
type FIToFIPaymentStatusReportV10 struct {
	GrpHdr            GroupHeader91           `xml:"GrpHdr" json:"GrpHdr"`
	OrgnlGrpInfAndSts []OriginalGroupHeader17 `xml:"OrgnlGrpInfAndSts,omitempty" json:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransaction110 `xml:"TxInfAndSts,omitempty" json:"TxInfAndSts,omitempty"`
	SplmtryData       []dt.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (FIToFIPaymentStatusReportV10) MessageID() string   { return "pacs.002.001.10" }
func (FIToFIPaymentStatusReportV10) RootElement() string { return "FIToFIPmtStsRpt" }

func (m FIToFIPaymentStatusReportV10) Validate() error {
	return iso.Fields(
		iso.Required("GrpHdr", m.GrpHdr),
		iso.Repeated("OrgnlGrpInfAndSts", m.OrgnlGrpInfAndSts),
		iso.Repeated("TxInfAndSts", m.TxInfAndSts),
		iso.Repeated("SplmtryData", m.SplmtryData),
	)
}

type GroupHeader91 struct {
	MsgId    dt.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm  dt.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	InstgAgt *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (g GroupHeader91) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", g.MsgId),
		iso.Optional("InstgAgt", g.InstgAgt),
		iso.Optional("InstdAgt", g.InstdAgt),
	)
}

type OriginalGroupHeader17 struct {
	OrgnlMsgId   dt.Max35Text                     `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId dt.Max35Text                     `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *dt.ISODateTime                  `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs *dt.Max15NumericText             `xml:"OrgnlNbOfTxs,omitempty" json:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum *dt.DecimalNumber                `xml:"OrgnlCtrlSum,omitempty" json:"OrgnlCtrlSum,omitempty"`
	GrpSts       *ExternalPaymentGroupStatus1Code `xml:"GrpSts,omitempty" json:"GrpSts,omitempty"`
	StsRsnInf    []StatusReasonInformation12      `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
}

func (o OriginalGroupHeader17) Validate() error {
	return iso.Fields(
		iso.Required("OrgnlMsgId", o.OrgnlMsgId),
		iso.Required("OrgnlMsgNmId", o.OrgnlMsgNmId),
		iso.Optional("OrgnlNbOfTxs", o.OrgnlNbOfTxs),
		iso.Optional("GrpSts", o.GrpSts),
		iso.Repeated("StsRsnInf", o.StsRsnInf),
	)
}

type OriginalGroupInformation29 struct {
	OrgnlMsgId   dt.Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId dt.Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *dt.ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (o OriginalGroupInformation29) Validate() error {
	return iso.Fields(
		iso.Required("OrgnlMsgId", o.OrgnlMsgId),
		iso.Required("OrgnlMsgNmId", o.OrgnlMsgNmId),
	)
}

// PaymentTransaction110 reports the status of one original transaction.
type PaymentTransaction110 struct {
	StsId           *dt.Max35Text                                    `xml:"StsId,omitempty" json:"StsId,omitempty"`
	OrgnlGrpInf     *OriginalGroupInformation29                      `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId    *dt.Max35Text                                    `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *dt.Max35Text                                    `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *dt.Max35Text                                    `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR       *dt.UUIDv4Identifier                             `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	TxSts           *ExternalPaymentTransactionStatus1Code           `xml:"TxSts,omitempty" json:"TxSts,omitempty"`
	StsRsnInf       []StatusReasonInformation12                      `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
	AccptncDtTm     *dt.ISODateTime                                  `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	ClrSysRef       *dt.Max35Text                                    `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	InstgAgt        *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt        *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (p PaymentTransaction110) Validate() error {
	return iso.Fields(
		iso.Optional("StsId", p.StsId),
		iso.Optional("OrgnlGrpInf", p.OrgnlGrpInf),
		iso.Optional("OrgnlInstrId", p.OrgnlInstrId),
		iso.Optional("OrgnlEndToEndId", p.OrgnlEndToEndId),
		iso.Optional("OrgnlTxId", p.OrgnlTxId),
		iso.Optional("OrgnlUETR", p.OrgnlUETR),
		iso.Optional("TxSts", p.TxSts),
		iso.Repeated("StsRsnInf", p.StsRsnInf),
		iso.Optional("ClrSysRef", p.ClrSysRef),
		iso.Optional("InstgAgt", p.InstgAgt),
		iso.Optional("InstdAgt", p.InstdAgt),
	)
}

// StatusReasonInformation12 explains a status. Rsn is the StatusReason6Choice
// group (Cd or Prtry).
type StatusReasonInformation12 struct {
	Orgtr    *dt.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *dt.CodeChoice             `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []dt.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (s StatusReasonInformation12) Validate() error {
	return iso.Fields(
		iso.Optional("Orgtr", s.Orgtr),
		iso.Optional("Rsn", s.Rsn),
		iso.Repeated("AddtlInf", s.AddtlInf),
	)
}
