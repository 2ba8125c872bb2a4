// Package camt holds the cash management messages.
package camt

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

var messageNameRule = iso.Text("MessageNameIdentification_FRS_1").Pattern(`[a-z]{4,4}[.]{1,1}[0-9]{3,3}[.]{1,1}001[.]{1,1}[0-9]{2,2}`)

// MessageNameIdentification names the requested report, e.g. camt.052.001.08.
type MessageNameIdentification string

func (v MessageNameIdentification) Validate() error { return messageNameRule.Check(string(v)) }

// AccountReportingRequestV05 is camt.060.001.05.
type AccountReportingRequestV05 struct {
	GrpHdr      GroupHeader77           `xml:"GrpHdr" json:"GrpHdr"`
	RptgReq     []ReportingRequest5     `xml:"RptgReq" json:"RptgReq"`
	SplmtryData []dt.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (AccountReportingRequestV05) MessageID() string   { return "camt.060.001.05" }
func (AccountReportingRequestV05) RootElement() string { return "AcctRptgReq" }

func (m AccountReportingRequestV05) Validate() error {
	return iso.Fields(
		iso.Required("GrpHdr", m.GrpHdr),
		iso.Repeated("RptgReq", m.RptgReq),
		iso.Repeated("SplmtryData", m.SplmtryData),
	)
}

type GroupHeader77 struct {
	MsgId   dt.Max35Text   `xml:"MsgId" json:"MsgId"`
	CreDtTm dt.ISODateTime `xml:"CreDtTm" json:"CreDtTm"`
	MsgSndr *Party40Choice `xml:"MsgSndr,omitempty" json:"MsgSndr,omitempty"`
}

func (g GroupHeader77) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", g.MsgId),
		iso.Optional("MsgSndr", g.MsgSndr),
	)
}

type ReportingRequest5 struct {
	Id          *dt.Max35Text                                    `xml:"Id,omitempty" json:"Id,omitempty"`
	ReqdMsgNmId MessageNameIdentification                        `xml:"ReqdMsgNmId" json:"ReqdMsgNmId"`
	Acct        *dt.CashAccount38                                `xml:"Acct,omitempty" json:"Acct,omitempty"`
	AcctOwnr    Party40Choice                                    `xml:"AcctOwnr" json:"AcctOwnr"`
	AcctSvcr    *dt.BranchAndFinancialInstitutionIdentification6 `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
	RptgPrd     *ReportingPeriod2                                `xml:"RptgPrd,omitempty" json:"RptgPrd,omitempty"`
	RptgSeq     *SequenceRange1Choice                            `xml:"RptgSeq,omitempty" json:"RptgSeq,omitempty"`
	ReqdTxTp    *TransactionType2                                `xml:"ReqdTxTp,omitempty" json:"ReqdTxTp,omitempty"`
	ReqdBalTp   []BalanceType13                                  `xml:"ReqdBalTp,omitempty" json:"ReqdBalTp,omitempty"`
}

func (r ReportingRequest5) Validate() error {
	return iso.Fields(
		iso.Optional("Id", r.Id),
		iso.Required("ReqdMsgNmId", r.ReqdMsgNmId),
		iso.Optional("Acct", r.Acct),
		iso.Required("AcctOwnr", r.AcctOwnr),
		iso.Optional("AcctSvcr", r.AcctSvcr),
		iso.Optional("RptgPrd", r.RptgPrd),
		iso.Optional("RptgSeq", r.RptgSeq),
		iso.Optional("ReqdTxTp", r.ReqdTxTp),
		iso.Repeated("ReqdBalTp", r.ReqdBalTp),
	)
}

type ReportingPeriod2 struct {
	FrToDt DatePeriodDetails1  `xml:"FrToDt" json:"FrToDt"`
	FrToTm *TimePeriodDetails1 `xml:"FrToTm,omitempty" json:"FrToTm,omitempty"`
	Tp     dt.QueryType3Code   `xml:"Tp" json:"Tp"`
}

func (p ReportingPeriod2) Validate() error {
	return iso.Fields(iso.Required("Tp", p.Tp))
}

type DatePeriodDetails1 struct {
	FrDt dt.ISODate  `xml:"FrDt" json:"FrDt"`
	ToDt *dt.ISODate `xml:"ToDt,omitempty" json:"ToDt,omitempty"`
}

type TimePeriodDetails1 struct {
	FrTm dt.ISOTime  `xml:"FrTm" json:"FrTm"`
	ToTm *dt.ISOTime `xml:"ToTm,omitempty" json:"ToTm,omitempty"`
}

type TransactionType2 struct {
	Sts       dt.CodeChoice      `xml:"Sts" json:"Sts"`
	CdtDbtInd dt.CreditDebitCode `xml:"CdtDbtInd" json:"CdtDbtInd"`
	FlrLmt    []Limit2           `xml:"FlrLmt,omitempty" json:"FlrLmt,omitempty"`
}

func (t TransactionType2) Validate() error {
	return iso.Fields(
		iso.Required("Sts", t.Sts),
		iso.Required("CdtDbtInd", t.CdtDbtInd),
		iso.Repeated("FlrLmt", t.FlrLmt),
	)
}

type Limit2 struct {
	Amt       dt.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd dt.FloorLimitType1Code               `xml:"CdtDbtInd" json:"CdtDbtInd"`
}

func (l Limit2) Validate() error {
	return iso.Fields(
		iso.Required("Amt", l.Amt),
		iso.Required("CdtDbtInd", l.CdtDbtInd),
	)
}

// BalanceType13 requests one balance type; both groups are Cd-or-Prtry.
type BalanceType13 struct {
	CdOrPrtry dt.CodeChoice  `xml:"CdOrPrtry" json:"CdOrPrtry"`
	SubTp     *dt.CodeChoice `xml:"SubTp,omitempty" json:"SubTp,omitempty"`
}

func (b BalanceType13) Validate() error {
	return iso.Fields(
		iso.Required("CdOrPrtry", b.CdOrPrtry),
		iso.Optional("SubTp", b.SubTp),
	)
}
