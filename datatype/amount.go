package datatype

import iso "github.com/open-payments/iso20022"

var (
	activeCurrencyAndAmountRule   = iso.Decimal("ActiveCurrencyAndAmount").Min(0)
	historicCurrencyAndAmountRule = iso.Decimal("ActiveOrHistoricCurrencyAndAmount").Min(0)
)

// ActiveCurrencyAndAmount is a non-negative amount with its currency carried
// as the Ccy attribute: <IntrBkSttlmAmt Ccy="EUR">12.50</IntrBkSttlmAmt>.
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value float64            `xml:",chardata" json:"Value"`
}

func (a ActiveCurrencyAndAmount) Validate() error {
	return iso.Fields(
		func() error { return activeCurrencyAndAmountRule.Check(a.Value) },
		iso.Required("Ccy", a.Ccy),
	)
}

type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   ActiveOrHistoricCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value float64                      `xml:",chardata" json:"Value"`
}

func (a ActiveOrHistoricCurrencyAndAmount) Validate() error {
	return iso.Fields(
		func() error { return historicCurrencyAndAmountRule.Check(a.Value) },
		iso.Required("Ccy", a.Ccy),
	)
}

// DecimalNumber and BaseOneRate carry no bounds of their own.
type (
	DecimalNumber float64
	BaseOneRate   float64
)
