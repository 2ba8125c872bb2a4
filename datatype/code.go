package datatype

import iso "github.com/open-payments/iso20022"

// Closed ISO 20022 code sets. Membership is exact and case-sensitive.
var (
	addressType2CodeRule            = iso.Text("AddressType2Code").Enum("ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY")
	namePrefix2CodeRule             = iso.Text("NamePrefix2Code").Enum("DOCT", "MADM", "MISS", "MIST", "MIKS")
	preferredContactMethodCodeRule  = iso.Text("PreferredContactMethod1Code").Enum("LETT", "MAIL", "PHON", "FAXX", "CELL")
	copyDuplicate1CodeRule          = iso.Text("CopyDuplicate1Code").Enum("CODU", "COPY", "DUPL")
	creditDebitCodeRule             = iso.Text("CreditDebitCode").Enum("CRDT", "DBIT")
	priority2CodeRule               = iso.Text("Priority2Code").Enum("HIGH", "NORM")
	priority3CodeRule               = iso.Text("Priority3Code").Enum("URGT", "HIGH", "NORM")
	chargeBearerType1CodeRule       = iso.Text("ChargeBearerType1Code").Enum("DEBT", "CRED", "SHAR", "SLEV")
	settlementMethod1CodeRule       = iso.Text("SettlementMethod1Code").Enum("INDA", "INGA", "COVE", "CLRG")
	clearingChannel2CodeRule        = iso.Text("ClearingChannel2Code").Enum("RTGS", "RTNS", "MPNS", "BOOK")
	instruction3CodeRule            = iso.Text("Instruction3Code").Enum("CHQB", "HOLD", "PHOB", "TELB")
	instruction4CodeRule            = iso.Text("Instruction4Code").Enum("PHOA", "TELA")
	queryType3CodeRule              = iso.Text("QueryType3Code").Enum("ALLL", "CHNG", "MODF")
	floorLimitType1CodeRule         = iso.Text("FloorLimitType1Code").Enum("CRED", "DEBT", "BOTH")
	externalCodeRule                = iso.Text("ExternalCode").Length(1, 4)
	externalLocalInstrumentCodeRule = iso.Text("ExternalLocalInstrument1Code").Length(1, 35)
	externalClearingSystemCodeRule  = iso.Text("ExternalClearingSystemIdentification1Code").Length(1, 5)
	externalCashClearingCodeRule    = iso.Text("ExternalCashClearingSystem1Code").Length(1, 3)
)

type AddressType2Code string

func (v AddressType2Code) Validate() error { return addressType2CodeRule.Check(string(v)) }

type NamePrefix2Code string

func (v NamePrefix2Code) Validate() error { return namePrefix2CodeRule.Check(string(v)) }

type PreferredContactMethod1Code string

func (v PreferredContactMethod1Code) Validate() error {
	return preferredContactMethodCodeRule.Check(string(v))
}

// CopyDuplicate1Code marks a message as a copy or duplicate.
type CopyDuplicate1Code string

const (
	CopyDuplicateCODU CopyDuplicate1Code = "CODU"
	CopyDuplicateCOPY CopyDuplicate1Code = "COPY"
	CopyDuplicateDUPL CopyDuplicate1Code = "DUPL"
)

func (v CopyDuplicate1Code) Validate() error { return copyDuplicate1CodeRule.Check(string(v)) }

type CreditDebitCode string

const (
	Credit CreditDebitCode = "CRDT"
	Debit  CreditDebitCode = "DBIT"
)

func (v CreditDebitCode) Validate() error { return creditDebitCodeRule.Check(string(v)) }

type Priority2Code string

const (
	PriorityHigh   Priority2Code = "HIGH"
	PriorityNormal Priority2Code = "NORM"
)

func (v Priority2Code) Validate() error { return priority2CodeRule.Check(string(v)) }

type Priority3Code string

func (v Priority3Code) Validate() error { return priority3CodeRule.Check(string(v)) }

// ChargeBearerType1Code says which party bears the charges.
type ChargeBearerType1Code string

const (
	ChargeBearerDebtor       ChargeBearerType1Code = "DEBT"
	ChargeBearerCreditor     ChargeBearerType1Code = "CRED"
	ChargeBearerShared       ChargeBearerType1Code = "SHAR"
	ChargeBearerServiceLevel ChargeBearerType1Code = "SLEV"
)

func (v ChargeBearerType1Code) Validate() error { return chargeBearerType1CodeRule.Check(string(v)) }

type SettlementMethod1Code string

const (
	SettlementInstructedAgent  SettlementMethod1Code = "INDA"
	SettlementInstructingAgent SettlementMethod1Code = "INGA"
	SettlementCover            SettlementMethod1Code = "COVE"
	SettlementClearing         SettlementMethod1Code = "CLRG"
)

func (v SettlementMethod1Code) Validate() error { return settlementMethod1CodeRule.Check(string(v)) }

type ClearingChannel2Code string

func (v ClearingChannel2Code) Validate() error { return clearingChannel2CodeRule.Check(string(v)) }

type Instruction3Code string

func (v Instruction3Code) Validate() error { return instruction3CodeRule.Check(string(v)) }

type Instruction4Code string

func (v Instruction4Code) Validate() error { return instruction4CodeRule.Check(string(v)) }

type QueryType3Code string

func (v QueryType3Code) Validate() error { return queryType3CodeRule.Check(string(v)) }

type FloorLimitType1Code string

func (v FloorLimitType1Code) Validate() error { return floorLimitType1CodeRule.Check(string(v)) }
