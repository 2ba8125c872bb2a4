package admi

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// StaticDataReportV02 is admi.010.001.02.
type StaticDataReportV02 struct {
	MsgId       dt.Max35Text               `xml:"MsgId" json:"MsgId"`
	SttlmSsnIdr *dt.Exact4AlphaNumericText `xml:"SttlmSsnIdr,omitempty" json:"SttlmSsnIdr,omitempty"`
	RptDtls     RequestDetails5            `xml:"RptDtls" json:"RptDtls"`
	SplmtryData []dt.SupplementaryData1    `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (StaticDataReportV02) MessageID() string   { return "admi.010.001.02" }
func (StaticDataReportV02) RootElement() string { return "StatcDataRpt" }

func (m StaticDataReportV02) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", m.MsgId),
		iso.Optional("SttlmSsnIdr", m.SttlmSsnIdr),
		iso.Required("RptDtls", m.RptDtls),
		iso.Repeated("SplmtryData", m.SplmtryData),
	)
}

type RequestDetails5 struct {
	Tp     dt.Max35Text      `xml:"Tp" json:"Tp"`
	ReqRef dt.Max35Text      `xml:"ReqRef" json:"ReqRef"`
	RptKey []RequestDetails4 `xml:"RptKey" json:"RptKey"`
}

func (r RequestDetails5) Validate() error {
	return iso.Fields(
		iso.Required("Tp", r.Tp),
		iso.Required("ReqRef", r.ReqRef),
		iso.Repeated("RptKey", r.RptKey),
	)
}

type RequestDetails4 struct {
	Key     dt.Max35Text       `xml:"Key" json:"Key"`
	RptData []ReportParameter1 `xml:"RptData,omitempty" json:"RptData,omitempty"`
}

func (r RequestDetails4) Validate() error {
	return iso.Fields(
		iso.Required("Key", r.Key),
		iso.Repeated("RptData", r.RptData),
	)
}

type ReportParameter1 struct {
	Nm  dt.Max70Text  `xml:"Nm" json:"Nm"`
	Val dt.Max350Text `xml:"Val" json:"Val"`
}

func (r ReportParameter1) Validate() error {
	return iso.Fields(
		iso.Required("Nm", r.Nm),
		iso.Required("Val", r.Val),
	)
}
