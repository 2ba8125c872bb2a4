package camt

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// PartyAlternative is an arm of Party40Choice.
type PartyAlternative interface {
	iso.Alternative
	isParty40()
}

// Party is the Pty arm.
type Party struct {
	dt.PartyIdentification135
}

func (Party) ChoiceTag() string { return "Pty" }
func (Party) isParty40()        {}

// Agent is the Agt arm.
type Agent struct {
	dt.BranchAndFinancialInstitutionIdentification6
}

func (Agent) ChoiceTag() string { return "Agt" }
func (Agent) isParty40()        {}

type partyAlternatives struct{}

func (partyAlternatives) Group() string { return "Party40Choice" }

func (partyAlternatives) New(tag string) (PartyAlternative, bool) {
	switch tag {
	case "Pty":
		return new(Party), true
	case "Agt":
		return new(Agent), true
	}
	return nil, false
}

type Party40Choice = iso.Choice[PartyAlternative, partyAlternatives]

// SequenceAlternative is an arm of SequenceRange1Choice. The equal and
// not-equal arms carry a single sequence number each.
type SequenceAlternative interface {
	iso.Alternative
	isSequence()
}

type (
	FromSequence     dt.Max35Text
	ToSequence       dt.Max35Text
	EqualSequence    dt.Max35Text
	NotEqualSequence dt.Max35Text
)

func (s FromSequence) Validate() error     { return dt.Max35Text(s).Validate() }
func (FromSequence) ChoiceTag() string     { return "FrSeq" }
func (FromSequence) isSequence()           {}
func (s ToSequence) Validate() error       { return dt.Max35Text(s).Validate() }
func (ToSequence) ChoiceTag() string       { return "ToSeq" }
func (ToSequence) isSequence()             {}
func (s EqualSequence) Validate() error    { return dt.Max35Text(s).Validate() }
func (EqualSequence) ChoiceTag() string    { return "EQSeq" }
func (EqualSequence) isSequence()          {}
func (s NotEqualSequence) Validate() error { return dt.Max35Text(s).Validate() }
func (NotEqualSequence) ChoiceTag() string { return "NEQSeq" }
func (NotEqualSequence) isSequence()       {}

// SequenceRange1 is the FrToSeq arm.
type SequenceRange1 struct {
	FrSeq dt.Max35Text `xml:"FrSeq" json:"FrSeq"`
	ToSeq dt.Max35Text `xml:"ToSeq" json:"ToSeq"`
}

func (r SequenceRange1) Validate() error {
	return iso.Fields(
		iso.Required("FrSeq", r.FrSeq),
		iso.Required("ToSeq", r.ToSeq),
	)
}

func (SequenceRange1) ChoiceTag() string { return "FrToSeq" }
func (SequenceRange1) isSequence()       {}

type sequenceAlternatives struct{}

func (sequenceAlternatives) Group() string { return "SequenceRange1Choice" }

func (sequenceAlternatives) New(tag string) (SequenceAlternative, bool) {
	switch tag {
	case "FrSeq":
		return new(FromSequence), true
	case "ToSeq":
		return new(ToSequence), true
	case "FrToSeq":
		return new(SequenceRange1), true
	case "EQSeq":
		return new(EqualSequence), true
	case "NEQSeq":
		return new(NotEqualSequence), true
	}
	return nil, false
}

type SequenceRange1Choice = iso.Choice[SequenceAlternative, sequenceAlternatives]
