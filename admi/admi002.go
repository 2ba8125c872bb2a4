package admi

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// Admi00200101 is the message reject (admi.002.001.01). Its root element is
// named after the message identifier.
type Admi00200101 struct {
	RltdRef MessageReference `xml:"RltdRef" json:"RltdRef"`
	Rsn     RejectionReason2 `xml:"Rsn" json:"Rsn"`
}

func (Admi00200101) MessageID() string   { return "admi.002.001.01" }
func (Admi00200101) RootElement() string { return "admi.002.001.01" }

func (m Admi00200101) Validate() error {
	return iso.Fields(
		iso.Required("RltdRef", m.RltdRef),
		iso.Required("Rsn", m.Rsn),
	)
}

type MessageReference struct {
	Ref dt.Max35Text `xml:"Ref" json:"Ref"`
}

func (m MessageReference) Validate() error {
	return iso.Fields(iso.Required("Ref", m.Ref))
}

type RejectionReason2 struct {
	RjctgPtyRsn dt.Max35Text     `xml:"RjctgPtyRsn" json:"RjctgPtyRsn"`
	RjctnDtTm   *dt.ISODateTime  `xml:"RjctnDtTm,omitempty" json:"RjctnDtTm,omitempty"`
	ErrLctn     *dt.Max350Text   `xml:"ErrLctn,omitempty" json:"ErrLctn,omitempty"`
	RsnDesc     *dt.Max350Text   `xml:"RsnDesc,omitempty" json:"RsnDesc,omitempty"`
	AddtlData   *dt.Max20000Text `xml:"AddtlData,omitempty" json:"AddtlData,omitempty"`
}

func (r RejectionReason2) Validate() error {
	return iso.Fields(
		iso.Required("RjctgPtyRsn", r.RjctgPtyRsn),
		iso.Optional("ErrLctn", r.ErrLctn),
		iso.Optional("RsnDesc", r.RsnDesc),
		iso.Optional("AddtlData", r.AddtlData),
	)
}
