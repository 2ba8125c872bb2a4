package datatype

import iso "github.com/open-payments/iso20022"

// BranchAndFinancialInstitutionIdentification6 identifies an agent and,
// optionally, its branch.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData3                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b BranchAndFinancialInstitutionIdentification6) Validate() error {
	return iso.Fields(
		iso.Required("FinInstnId", b.FinInstnId),
		iso.Optional("BrnchId", b.BrnchId),
	)
}

type FinancialInstitutionIdentification18 struct {
	BICFI       *BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *Max140Text                          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f FinancialInstitutionIdentification18) Validate() error {
	return iso.Fields(
		iso.Optional("BICFI", f.BICFI),
		iso.Optional("ClrSysMmbId", f.ClrSysMmbId),
		iso.Optional("LEI", f.LEI),
		iso.Optional("Nm", f.Nm),
		iso.Optional("PstlAdr", f.PstlAdr),
		iso.Optional("Othr", f.Othr),
	)
}

// ClearingSystemMemberIdentification2 is a member id within a clearing
// system, e.g. a US ABA routing number under USABA.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

func (c ClearingSystemMemberIdentification2) Validate() error {
	return iso.Fields(
		iso.Optional("ClrSysId", c.ClrSysId),
		iso.Required("MmbId", c.MmbId),
	)
}

type GenericFinancialIdentification1 struct {
	Id      Max35Text   `xml:"Id" json:"Id"`
	SchmeNm *CodeChoice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text  `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericFinancialIdentification1) Validate() error {
	return iso.Fields(
		iso.Required("Id", g.Id),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type BranchData3 struct {
	Id      *Max35Text       `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *LEIIdentifier   `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b BranchData3) Validate() error {
	return iso.Fields(
		iso.Optional("Id", b.Id),
		iso.Optional("LEI", b.LEI),
		iso.Optional("Nm", b.Nm),
		iso.Optional("PstlAdr", b.PstlAdr),
	)
}
