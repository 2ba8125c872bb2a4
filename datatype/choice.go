package datatype

import iso "github.com/open-payments/iso20022"

// Proprietary is the Prtry arm shared by the code-or-proprietary groups.
type Proprietary Max35Text

func (p Proprietary) Validate() error  { return Max35Text(p).Validate() }
func (Proprietary) ChoiceTag() string  { return "Prtry" }
func (Proprietary) isCode()            {}
func (Proprietary) isLocalInstrument() {}
func (Proprietary) isClearingSystem()  {}
func (Proprietary) isCashClearing()    {}

// CodeAlternative is an arm of CodeChoice.
type CodeAlternative interface {
	iso.Alternative
	isCode()
}

// Code is the Cd arm carrying an externally listed code of up to 4
// characters (service level, purpose, category purpose, scheme names...).
type Code string

func (c Code) Validate() error { return externalCodeRule.Check(string(c)) }
func (Code) ChoiceTag() string { return "Cd" }
func (Code) isCode()           {}

type codeAlternatives struct{}

func (codeAlternatives) Group() string { return "CodeChoice" }

func (codeAlternatives) New(tag string) (CodeAlternative, bool) {
	switch tag {
	case "Cd":
		return new(Code), true
	case "Prtry":
		return new(Proprietary), true
	}
	return nil, false
}

// CodeChoice is the Cd-or-Prtry group (ServiceLevel8Choice, Purpose2Choice,
// CategoryPurpose1Choice, the *SchemeName1Choice groups and their kin).
type CodeChoice = iso.Choice[CodeAlternative, codeAlternatives]

// LocalInstrumentAlternative is an arm of LocalInstrument2Choice.
type LocalInstrumentAlternative interface {
	iso.Alternative
	isLocalInstrument()
}

type LocalInstrumentCode string

func (c LocalInstrumentCode) Validate() error  { return externalLocalInstrumentCodeRule.Check(string(c)) }
func (LocalInstrumentCode) ChoiceTag() string  { return "Cd" }
func (LocalInstrumentCode) isLocalInstrument() {}

type localInstrumentAlternatives struct{}

func (localInstrumentAlternatives) Group() string { return "LocalInstrument2Choice" }

func (localInstrumentAlternatives) New(tag string) (LocalInstrumentAlternative, bool) {
	switch tag {
	case "Cd":
		return new(LocalInstrumentCode), true
	case "Prtry":
		return new(Proprietary), true
	}
	return nil, false
}

type LocalInstrument2Choice = iso.Choice[LocalInstrumentAlternative, localInstrumentAlternatives]

// ClearingSystemAlternative is an arm of ClearingSystemIdentification2Choice.
type ClearingSystemAlternative interface {
	iso.Alternative
	isClearingSystem()
}

type ClearingSystemCode string

func (c ClearingSystemCode) Validate() error { return externalClearingSystemCodeRule.Check(string(c)) }
func (ClearingSystemCode) ChoiceTag() string { return "Cd" }
func (ClearingSystemCode) isClearingSystem() {}

type clearingSystemAlternatives struct{}

func (clearingSystemAlternatives) Group() string { return "ClearingSystemIdentification2Choice" }

func (clearingSystemAlternatives) New(tag string) (ClearingSystemAlternative, bool) {
	switch tag {
	case "Cd":
		return new(ClearingSystemCode), true
	case "Prtry":
		return new(Proprietary), true
	}
	return nil, false
}

type ClearingSystemIdentification2Choice = iso.Choice[ClearingSystemAlternative, clearingSystemAlternatives]

// CashClearingAlternative is an arm of ClearingSystemIdentification3Choice.
type CashClearingAlternative interface {
	iso.Alternative
	isCashClearing()
}

type CashClearingSystemCode string

func (c CashClearingSystemCode) Validate() error { return externalCashClearingCodeRule.Check(string(c)) }
func (CashClearingSystemCode) ChoiceTag() string { return "Cd" }
func (CashClearingSystemCode) isCashClearing()   {}

type cashClearingAlternatives struct{}

func (cashClearingAlternatives) Group() string { return "ClearingSystemIdentification3Choice" }

func (cashClearingAlternatives) New(tag string) (CashClearingAlternative, bool) {
	switch tag {
	case "Cd":
		return new(CashClearingSystemCode), true
	case "Prtry":
		return new(Proprietary), true
	}
	return nil, false
}

type ClearingSystemIdentification3Choice = iso.Choice[CashClearingAlternative, cashClearingAlternatives]

// DateAlternative is an arm of DateAndDateTime2Choice.
type DateAlternative interface {
	iso.Alternative
	isDate()
}

type Date ISODate

func (Date) Validate() error   { return nil }
func (Date) ChoiceTag() string { return "Dt" }
func (Date) isDate()           {}

type DateTime ISODateTime

func (DateTime) Validate() error   { return nil }
func (DateTime) ChoiceTag() string { return "DtTm" }
func (DateTime) isDate()           {}

type dateAlternatives struct{}

func (dateAlternatives) Group() string { return "DateAndDateTime2Choice" }

func (dateAlternatives) New(tag string) (DateAlternative, bool) {
	switch tag {
	case "Dt":
		return new(Date), true
	case "DtTm":
		return new(DateTime), true
	}
	return nil, false
}

type DateAndDateTime2Choice = iso.Choice[DateAlternative, dateAlternatives]
