package datatype

import iso "github.com/open-payments/iso20022"

type CashAccount38 struct {
	Id   AccountIdentification4Choice  `xml:"Id" json:"Id"`
	Tp   *CodeChoice                   `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (c CashAccount38) Validate() error {
	return iso.Fields(
		iso.Required("Id", c.Id),
		iso.Optional("Tp", c.Tp),
		iso.Optional("Ccy", c.Ccy),
		iso.Optional("Nm", c.Nm),
		iso.Optional("Prxy", c.Prxy),
	)
}

// AccountAlternative is an arm of AccountIdentification4Choice.
type AccountAlternative interface {
	iso.Alternative
	isAccount()
}

type AccountIBAN IBAN2007Identifier

func (a AccountIBAN) Validate() error { return IBAN2007Identifier(a).Validate() }
func (AccountIBAN) ChoiceTag() string { return "IBAN" }
func (AccountIBAN) isAccount()        {}

type AccountOther struct {
	GenericAccountIdentification1
}

func (AccountOther) ChoiceTag() string { return "Othr" }
func (AccountOther) isAccount()        {}

type accountAlternatives struct{}

func (accountAlternatives) Group() string { return "AccountIdentification4Choice" }

func (accountAlternatives) New(tag string) (AccountAlternative, bool) {
	switch tag {
	case "IBAN":
		return new(AccountIBAN), true
	case "Othr":
		return new(AccountOther), true
	}
	return nil, false
}

type AccountIdentification4Choice = iso.Choice[AccountAlternative, accountAlternatives]

type GenericAccountIdentification1 struct {
	Id      Max34Text   `xml:"Id" json:"Id"`
	SchmeNm *CodeChoice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text  `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericAccountIdentification1) Validate() error {
	return iso.Fields(
		iso.Required("Id", g.Id),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type ProxyAccountIdentification1 struct {
	Tp *CodeChoice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text `xml:"Id" json:"Id"`
}

func (p ProxyAccountIdentification1) Validate() error {
	return iso.Fields(
		iso.Optional("Tp", p.Tp),
		iso.Required("Id", p.Id),
	)
}
