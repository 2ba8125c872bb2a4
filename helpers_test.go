package iso20022_test

import (
	iso "github.com/open-payments/iso20022"
)

var (
	countryRule = iso.Text("CountryCode").Pattern(`[A-Z]{2,2}`)
	text35Rule  = iso.Text("Max35Text").Length(1, 35)
	leiRule     = iso.Text("LEIIdentifier").Pattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)
)

type country string

func (c country) Validate() error { return countryRule.Check(string(c)) }

type text35 string

func (t text35) Validate() error { return text35Rule.Check(string(t)) }

type lei string

func (l lei) Validate() error { return leiRule.Check(string(l)) }

type address struct {
	Ctry    country  `xml:"Ctry" json:"Ctry"`
	AdrLine []text35 `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a address) Validate() error {
	return iso.Fields(
		iso.Required("Ctry", a.Ctry),
		iso.Repeated("AdrLine", a.AdrLine),
	)
}

// partyAlt is the sealed alternative set of partyIDChoice.
type partyAlt interface {
	iso.Alternative
	isPartyAlt()
}

type leiAlt lei

func (l leiAlt) Validate() error { return lei(l).Validate() }
func (leiAlt) ChoiceTag() string { return "LEI" }
func (leiAlt) isPartyAlt()       {}

type otherAlt struct {
	Id text35 `xml:"Id" json:"Id"`
}

func (o otherAlt) Validate() error { return iso.Fields(iso.Required("Id", o.Id)) }
func (otherAlt) ChoiceTag() string { return "Othr" }
func (otherAlt) isPartyAlt()       {}

type partyAlts struct{}

func (partyAlts) Group() string { return "PartyIdChoice" }

func (partyAlts) New(tag string) (partyAlt, bool) {
	switch tag {
	case "LEI":
		return new(leiAlt), true
	case "Othr":
		return new(otherAlt), true
	}
	return nil, false
}

type partyIDChoice = iso.Choice[partyAlt, partyAlts]

type party struct {
	Nm      *text35        `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr address        `xml:"PstlAdr" json:"PstlAdr"`
	Id      *partyIDChoice `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (p party) Validate() error {
	return iso.Fields(
		iso.Optional("Nm", p.Nm),
		iso.Required("PstlAdr", p.PstlAdr),
		iso.Optional("Id", p.Id),
	)
}

type testMsg struct {
	MsgId text35 `xml:"MsgId" json:"MsgId"`
	Pty   party  `xml:"Pty" json:"Pty"`
}

func (m testMsg) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", m.MsgId),
		iso.Required("Pty", m.Pty),
	)
}

func (testMsg) MessageID() string   { return "test.001.001.01" }
func (testMsg) RootElement() string { return "TstMsg" }

// testMsgV2 shares its root element with testMsg.
type testMsgV2 struct {
	testMsg
}

func (testMsgV2) MessageID() string { return "test.001.001.02" }

func ptr[T any](v T) *T { return &v }

func validMsg() testMsg {
	return testMsg{
		MsgId: "MSG-1",
		Pty: party{
			Nm:      ptr(text35("ACME")),
			PstlAdr: address{Ctry: "US", AdrLine: []text35{"1 Main St"}},
			Id:      &partyIDChoice{Value: leiAlt("5493001KJTIIGC8Y1R12")},
		},
	}
}

func testRegistry() *iso.Registry {
	return iso.MustRegistry(
		iso.Kind{ID: "test.001.001.01", Root: "TstMsg", New: func() iso.Message { return &testMsg{} }},
	)
}
