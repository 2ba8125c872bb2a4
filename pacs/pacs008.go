package pacs

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// FIToFICustomerCreditTransferV08 is pacs.008.001.08, the customer credit
// transfer exchanged between agents.
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
	SplmtryData []dt.SupplementaryData1       `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (FIToFICustomerCreditTransferV08) MessageID() string   { return "pacs.008.001.08" }
func (FIToFICustomerCreditTransferV08) RootElement() string { return "FIToFICstmrCdtTrf" }

func (m FIToFICustomerCreditTransferV08) Validate() error {
	return iso.Fields(
		iso.Required("GrpHdr", m.GrpHdr),
		iso.Repeated("CdtTrfTxInf", m.CdtTrfTxInf),
		iso.Repeated("SplmtryData", m.SplmtryData),
	)
}

type GroupHeader93 struct {
	MsgId             dt.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm           dt.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	BtchBookg         *bool                                            `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs           dt.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum           *dt.DecimalNumber                                `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *dt.ActiveCurrencyAndAmount                      `xml:"TtlIntrBkSttlmAmt,omitempty" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *dt.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction7                           `xml:"SttlmInf" json:"SttlmInf"`
	PmtTpInf          *PaymentTypeInformation28                        `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	InstgAgt          *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (g GroupHeader93) Validate() error {
	return iso.Fields(
		iso.Required("MsgId", g.MsgId),
		iso.Required("NbOfTxs", g.NbOfTxs),
		iso.Optional("TtlIntrBkSttlmAmt", g.TtlIntrBkSttlmAmt),
		iso.Required("SttlmInf", g.SttlmInf),
		iso.Optional("PmtTpInf", g.PmtTpInf),
		iso.Optional("InstgAgt", g.InstgAgt),
		iso.Optional("InstdAgt", g.InstdAgt),
	)
}

type SettlementInstruction7 struct {
	SttlmMtd             dt.SettlementMethod1Code                         `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct            *dt.CashAccount38                                `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
	ClrSys               *dt.ClearingSystemIdentification3Choice          `xml:"ClrSys,omitempty" json:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstgRmbrsmntAgt,omitempty" json:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *dt.CashAccount38                                `xml:"InstgRmbrsmntAgtAcct,omitempty" json:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstdRmbrsmntAgt,omitempty" json:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *dt.CashAccount38                                `xml:"InstdRmbrsmntAgtAcct,omitempty" json:"InstdRmbrsmntAgtAcct,omitempty"`
}

func (s SettlementInstruction7) Validate() error {
	return iso.Fields(
		iso.Required("SttlmMtd", s.SttlmMtd),
		iso.Optional("SttlmAcct", s.SttlmAcct),
		iso.Optional("ClrSys", s.ClrSys),
		iso.Optional("InstgRmbrsmntAgt", s.InstgRmbrsmntAgt),
		iso.Optional("InstgRmbrsmntAgtAcct", s.InstgRmbrsmntAgtAcct),
		iso.Optional("InstdRmbrsmntAgt", s.InstdRmbrsmntAgt),
		iso.Optional("InstdRmbrsmntAgtAcct", s.InstdRmbrsmntAgtAcct),
	)
}

type PaymentTypeInformation28 struct {
	InstrPrty *dt.Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *dt.ClearingChannel2Code   `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []dt.CodeChoice            `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *dt.LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *dt.CodeChoice             `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (p PaymentTypeInformation28) Validate() error {
	return iso.Fields(
		iso.Optional("InstrPrty", p.InstrPrty),
		iso.Optional("ClrChanl", p.ClrChanl),
		iso.Repeated("SvcLvl", p.SvcLvl),
		iso.Optional("LclInstrm", p.LclInstrm),
		iso.Optional("CtgyPurp", p.CtgyPurp),
	)
}

// CreditTransferTransaction39 is one credit transfer. The previous
// instructing and intermediary agent chains are kept to the first hop.
type CreditTransferTransaction39 struct {
	PmtId           PaymentIdentification7                           `xml:"PmtId" json:"PmtId"`
	PmtTpInf        *PaymentTypeInformation28                        `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt  dt.ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt   *dt.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmPrty       *dt.Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	AccptncDtTm     *dt.ISODateTime                                  `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	InstdAmt        *dt.ActiveOrHistoricCurrencyAndAmount            `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	XchgRate        *dt.BaseOneRate                                  `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	ChrgBr          dt.ChargeBearerType1Code                         `xml:"ChrgBr" json:"ChrgBr"`
	ChrgsInf        []Charges7                                       `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	PrvsInstgAgt1   *dt.BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt1,omitempty" json:"PrvsInstgAgt1,omitempty"`
	InstgAgt        *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt        *dt.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	IntrmyAgt1      *dt.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct  *dt.CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	UltmtDbtr       *dt.PartyIdentification135                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	InitgPty        *dt.PartyIdentification135                       `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr            dt.PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct        *dt.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt         dt.BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct     *dt.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt         dt.BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	CdtrAgtAcct     *dt.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr            dt.PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct        *dt.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr       *dt.PartyIdentification135                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent1                   `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt  []InstructionForNextAgent1                       `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Purp            *dt.CodeChoice                                   `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf          *RemittanceInformation16                         `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	SplmtryData     []dt.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (c CreditTransferTransaction39) Validate() error {
	return iso.Fields(
		iso.Required("PmtId", c.PmtId),
		iso.Optional("PmtTpInf", c.PmtTpInf),
		iso.Required("IntrBkSttlmAmt", c.IntrBkSttlmAmt),
		iso.Optional("SttlmPrty", c.SttlmPrty),
		iso.Optional("InstdAmt", c.InstdAmt),
		iso.Required("ChrgBr", c.ChrgBr),
		iso.Repeated("ChrgsInf", c.ChrgsInf),
		iso.Optional("PrvsInstgAgt1", c.PrvsInstgAgt1),
		iso.Optional("InstgAgt", c.InstgAgt),
		iso.Optional("InstdAgt", c.InstdAgt),
		iso.Optional("IntrmyAgt1", c.IntrmyAgt1),
		iso.Optional("IntrmyAgt1Acct", c.IntrmyAgt1Acct),
		iso.Optional("UltmtDbtr", c.UltmtDbtr),
		iso.Optional("InitgPty", c.InitgPty),
		iso.Required("Dbtr", c.Dbtr),
		iso.Optional("DbtrAcct", c.DbtrAcct),
		iso.Required("DbtrAgt", c.DbtrAgt),
		iso.Optional("DbtrAgtAcct", c.DbtrAgtAcct),
		iso.Required("CdtrAgt", c.CdtrAgt),
		iso.Optional("CdtrAgtAcct", c.CdtrAgtAcct),
		iso.Required("Cdtr", c.Cdtr),
		iso.Optional("CdtrAcct", c.CdtrAcct),
		iso.Optional("UltmtCdtr", c.UltmtCdtr),
		iso.Repeated("InstrForCdtrAgt", c.InstrForCdtrAgt),
		iso.Repeated("InstrForNxtAgt", c.InstrForNxtAgt),
		iso.Optional("Purp", c.Purp),
		iso.Optional("RmtInf", c.RmtInf),
		iso.Repeated("SplmtryData", c.SplmtryData),
	)
}

type PaymentIdentification7 struct {
	InstrId    *dt.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId dt.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *dt.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       *dt.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	ClrSysRef  *dt.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

func (p PaymentIdentification7) Validate() error {
	return iso.Fields(
		iso.Optional("InstrId", p.InstrId),
		iso.Required("EndToEndId", p.EndToEndId),
		iso.Optional("TxId", p.TxId),
		iso.Optional("UETR", p.UETR),
		iso.Optional("ClrSysRef", p.ClrSysRef),
	)
}

type Charges7 struct {
	Amt dt.ActiveOrHistoricCurrencyAndAmount            `xml:"Amt" json:"Amt"`
	Agt dt.BranchAndFinancialInstitutionIdentification6 `xml:"Agt" json:"Agt"`
}

func (c Charges7) Validate() error {
	return iso.Fields(
		iso.Required("Amt", c.Amt),
		iso.Required("Agt", c.Agt),
	)
}

type InstructionForCreditorAgent1 struct {
	Cd       *dt.Instruction3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *dt.Max140Text       `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForCreditorAgent1) Validate() error {
	return iso.Fields(
		iso.Optional("Cd", i.Cd),
		iso.Optional("InstrInf", i.InstrInf),
	)
}

type InstructionForNextAgent1 struct {
	Cd       *dt.Instruction4Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *dt.Max140Text       `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForNextAgent1) Validate() error {
	return iso.Fields(
		iso.Optional("Cd", i.Cd),
		iso.Optional("InstrInf", i.InstrInf),
	)
}

type RemittanceInformation16 struct {
	Ustrd []dt.Max140Text                     `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation16 `xml:"Strd,omitempty" json:"Strd,omitempty"`
}

func (r RemittanceInformation16) Validate() error {
	return iso.Fields(
		iso.Repeated("Ustrd", r.Ustrd),
		iso.Repeated("Strd", r.Strd),
	)
}

// StructuredRemittanceInformation16 keeps the creditor reference, the parties
// and the free text lines. Tax and garnishment blocks are not modelled.
type StructuredRemittanceInformation16 struct {
	CdtrRefInf  *CreditorReferenceInformation2 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	Invcr       *dt.PartyIdentification135     `xml:"Invcr,omitempty" json:"Invcr,omitempty"`
	Invcee      *dt.PartyIdentification135     `xml:"Invcee,omitempty" json:"Invcee,omitempty"`
	AddtlRmtInf []dt.Max140Text                `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s StructuredRemittanceInformation16) Validate() error {
	return iso.Fields(
		iso.Optional("CdtrRefInf", s.CdtrRefInf),
		iso.Optional("Invcr", s.Invcr),
		iso.Optional("Invcee", s.Invcee),
		iso.Repeated("AddtlRmtInf", s.AddtlRmtInf),
	)
}

type CreditorReferenceInformation2 struct {
	Ref *dt.Max35Text `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c CreditorReferenceInformation2) Validate() error {
	return iso.Fields(iso.Optional("Ref", c.Ref))
}
