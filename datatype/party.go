package datatype

import iso "github.com/open-payments/iso20022"

// PostalAddress24 is the structured postal address.
type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a PostalAddress24) Validate() error {
	return iso.Fields(
		iso.Optional("AdrTp", a.AdrTp),
		iso.Optional("Dept", a.Dept),
		iso.Optional("SubDept", a.SubDept),
		iso.Optional("StrtNm", a.StrtNm),
		iso.Optional("BldgNb", a.BldgNb),
		iso.Optional("BldgNm", a.BldgNm),
		iso.Optional("Flr", a.Flr),
		iso.Optional("PstBx", a.PstBx),
		iso.Optional("Room", a.Room),
		iso.Optional("PstCd", a.PstCd),
		iso.Optional("TwnNm", a.TwnNm),
		iso.Optional("TwnLctnNm", a.TwnLctnNm),
		iso.Optional("DstrctNm", a.DstrctNm),
		iso.Optional("CtrySubDvsn", a.CtrySubDvsn),
		iso.Optional("Ctry", a.Ctry),
		iso.Repeated("AdrLine", a.AdrLine),
	)
}

// AddressTypeAlternative is an arm of AddressType3Choice.
type AddressTypeAlternative interface {
	iso.Alternative
	isAddressType()
}

type AddressTypeCode AddressType2Code

func (c AddressTypeCode) Validate() error { return AddressType2Code(c).Validate() }
func (AddressTypeCode) ChoiceTag() string { return "Cd" }
func (AddressTypeCode) isAddressType()    {}

type AddressTypeProprietary struct {
	GenericIdentification30
}

func (AddressTypeProprietary) ChoiceTag() string { return "Prtry" }
func (AddressTypeProprietary) isAddressType()    {}

type addressTypeAlternatives struct{}

func (addressTypeAlternatives) Group() string { return "AddressType3Choice" }

func (addressTypeAlternatives) New(tag string) (AddressTypeAlternative, bool) {
	switch tag {
	case "Cd":
		return new(AddressTypeCode), true
	case "Prtry":
		return new(AddressTypeProprietary), true
	}
	return nil, false
}

type AddressType3Choice = iso.Choice[AddressTypeAlternative, addressTypeAlternatives]

type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification30) Validate() error {
	return iso.Fields(
		iso.Required("Id", g.Id),
		iso.Required("Issr", g.Issr),
		iso.Optional("SchmeNm", g.SchmeNm),
	)
}

// PartyIdentification135 identifies a non-financial party (debtor, creditor,
// ultimate parties, initiating party).
type PartyIdentification135 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p PartyIdentification135) Validate() error {
	return iso.Fields(
		iso.Optional("Nm", p.Nm),
		iso.Optional("PstlAdr", p.PstlAdr),
		iso.Optional("Id", p.Id),
		iso.Optional("CtryOfRes", p.CtryOfRes),
		iso.Optional("CtctDtls", p.CtctDtls),
	)
}

// Party38Alternative is an arm of Party38Choice.
type Party38Alternative interface {
	iso.Alternative
	isParty38()
}

// OrgID selects an organisation identification.
type OrgID struct {
	OrganisationIdentification29
}

func (OrgID) ChoiceTag() string { return "OrgId" }
func (OrgID) isParty38()        {}

// PrvtID selects a private person identification.
type PrvtID struct {
	PersonIdentification13
}

func (PrvtID) ChoiceTag() string { return "PrvtId" }
func (PrvtID) isParty38()        {}

type party38Alternatives struct{}

func (party38Alternatives) Group() string { return "Party38Choice" }

func (party38Alternatives) New(tag string) (Party38Alternative, bool) {
	switch tag {
	case "OrgId":
		return new(OrgID), true
	case "PrvtId":
		return new(PrvtID), true
	}
	return nil, false
}

type Party38Choice = iso.Choice[Party38Alternative, party38Alternatives]

type OrganisationIdentification29 struct {
	AnyBIC *AnyBICDec2014Identifier             `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o OrganisationIdentification29) Validate() error {
	return iso.Fields(
		iso.Optional("AnyBIC", o.AnyBIC),
		iso.Optional("LEI", o.LEI),
		iso.Repeated("Othr", o.Othr),
	)
}

type GenericOrganisationIdentification1 struct {
	Id      Max35Text   `xml:"Id" json:"Id"`
	SchmeNm *CodeChoice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text  `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericOrganisationIdentification1) Validate() error {
	return iso.Fields(
		iso.Required("Id", g.Id),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (p PersonIdentification13) Validate() error {
	return iso.Fields(
		iso.Optional("DtAndPlcOfBirth", p.DtAndPlcOfBirth),
		iso.Repeated("Othr", p.Othr),
	)
}

type DateAndPlaceOfBirth1 struct {
	BirthDt     ISODate     `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

func (d DateAndPlaceOfBirth1) Validate() error {
	return iso.Fields(
		iso.Optional("PrvcOfBirth", d.PrvcOfBirth),
		iso.Required("CityOfBirth", d.CityOfBirth),
		iso.Required("CtryOfBirth", d.CtryOfBirth),
	)
}

type GenericPersonIdentification1 struct {
	Id      Max35Text   `xml:"Id" json:"Id"`
	SchmeNm *CodeChoice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text  `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericPersonIdentification1) Validate() error {
	return iso.Fields(
		iso.Required("Id", g.Id),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	EmailAdr  *Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c Contact4) Validate() error {
	return iso.Fields(
		iso.Optional("NmPrfx", c.NmPrfx),
		iso.Optional("Nm", c.Nm),
		iso.Optional("PhneNb", c.PhneNb),
		iso.Optional("MobNb", c.MobNb),
		iso.Optional("FaxNb", c.FaxNb),
		iso.Optional("EmailAdr", c.EmailAdr),
		iso.Optional("EmailPurp", c.EmailPurp),
		iso.Optional("JobTitl", c.JobTitl),
		iso.Optional("Rspnsblty", c.Rspnsblty),
		iso.Optional("Dept", c.Dept),
		iso.Repeated("Othr", c.Othr),
		iso.Optional("PrefrdMtd", c.PrefrdMtd),
	)
}

type OtherContact1 struct {
	ChanlTp Max4Text    `xml:"ChanlTp" json:"ChanlTp"`
	Id      *Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (o OtherContact1) Validate() error {
	return iso.Fields(
		iso.Required("ChanlTp", o.ChanlTp),
		iso.Optional("Id", o.Id),
	)
}
