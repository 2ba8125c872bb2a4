// Package head holds the business application header (head.001.001.02) that
// travels next to every FedNow message.
package head

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// BusinessApplicationHeaderV02 is the AppHdr element. It is written on its own
// rather than inside a Document wrapper.
type BusinessApplicationHeaderV02 struct {
	CharSet    *dt.Max35Text                 `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice                 `xml:"Fr" json:"Fr"`
	To         Party44Choice                 `xml:"To" json:"To"`
	BizMsgIdr  dt.Max35Text                  `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  dt.Max35Text                  `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *dt.Max35Text                 `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      dt.ISODateTime                `xml:"CreDt" json:"CreDt"`
	BizPrcgDt  *dt.ISODateTime               `xml:"BizPrcgDt,omitempty" json:"BizPrcgDt,omitempty"`
	CpyDplct   *dt.CopyDuplicate1Code        `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *bool                         `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *dt.Max4Text                  `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope            `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (BusinessApplicationHeaderV02) MessageID() string   { return "head.001.001.02" }
func (BusinessApplicationHeaderV02) RootElement() string { return "AppHdr" }
func (BusinessApplicationHeaderV02) Standalone()         {}

func (h BusinessApplicationHeaderV02) Validate() error {
	return iso.Fields(
		iso.Optional("CharSet", h.CharSet),
		iso.Required("Fr", h.Fr),
		iso.Required("To", h.To),
		iso.Required("BizMsgIdr", h.BizMsgIdr),
		iso.Required("MsgDefIdr", h.MsgDefIdr),
		iso.Optional("BizSvc", h.BizSvc),
		iso.Optional("MktPrctc", h.MktPrctc),
		iso.Optional("CpyDplct", h.CpyDplct),
		iso.Optional("Prty", h.Prty),
		iso.Repeated("Rltd", h.Rltd),
	)
}

// BusinessApplicationHeader5 describes a related header, e.g. the header of
// the message being answered.
type BusinessApplicationHeader5 struct {
	CharSet    *dt.Max35Text          `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice          `xml:"Fr" json:"Fr"`
	To         Party44Choice          `xml:"To" json:"To"`
	BizMsgIdr  dt.Max35Text           `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  dt.Max35Text           `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *dt.Max35Text          `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt      dt.ISODateTime         `xml:"CreDt" json:"CreDt"`
	CpyDplct   *dt.CopyDuplicate1Code `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *bool                  `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *dt.Max4Text           `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope     `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
}

func (h BusinessApplicationHeader5) Validate() error {
	return iso.Fields(
		iso.Optional("CharSet", h.CharSet),
		iso.Required("Fr", h.Fr),
		iso.Required("To", h.To),
		iso.Required("BizMsgIdr", h.BizMsgIdr),
		iso.Required("MsgDefIdr", h.MsgDefIdr),
		iso.Optional("BizSvc", h.BizSvc),
		iso.Optional("CpyDplct", h.CpyDplct),
		iso.Optional("Prty", h.Prty),
	)
}

type ImplementationSpecification1 struct {
	Regy dt.Max350Text  `xml:"Regy" json:"Regy"`
	Id   dt.Max2048Text `xml:"Id" json:"Id"`
}

func (s ImplementationSpecification1) Validate() error {
	return iso.Fields(
		iso.Required("Regy", s.Regy),
		iso.Required("Id", s.Id),
	)
}

// SignatureEnvelope keeps the signature block verbatim.
type SignatureEnvelope struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}
