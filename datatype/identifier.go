package datatype

import iso "github.com/open-payments/iso20022"

var (
	countryCodeRule        = iso.Text("CountryCode").Pattern(`[A-Z]{2,2}`)
	activeCurrencyCodeRule = iso.Text("ActiveCurrencyCode").Pattern(`[A-Z]{3,3}`)
	historicCurrencyRule   = iso.Text("ActiveOrHistoricCurrencyCode").Pattern(`[A-Z]{3,3}`)
	bicfiRule              = iso.Text("BICFIDec2014Identifier").Pattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	anyBICRule             = iso.Text("AnyBICDec2014Identifier").Pattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	leiRule                = iso.Text("LEIIdentifier").Pattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)
	ibanRule               = iso.Text("IBAN2007Identifier").Pattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)
	uuidv4Rule             = iso.Text("UUIDv4Identifier").Pattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`)
	phoneNumberRule        = iso.Text("PhoneNumber").Pattern(`\+[0-9]{1,3}-[0-9()+\-]{1,30}`)
)

// CountryCode is an ISO 3166 alpha-2 code.
type CountryCode string

func (v CountryCode) Validate() error { return countryCodeRule.Check(string(v)) }

// ActiveCurrencyCode is an ISO 4217 code of a currency in use.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate() error { return activeCurrencyCodeRule.Check(string(v)) }

type ActiveOrHistoricCurrencyCode string

func (v ActiveOrHistoricCurrencyCode) Validate() error { return historicCurrencyRule.Check(string(v)) }

// BICFIDec2014Identifier is the BIC of a financial institution.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate() error { return bicfiRule.Check(string(v)) }

type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate() error { return anyBICRule.Check(string(v)) }

// LEIIdentifier is a 20 character Legal Entity Identifier.
type LEIIdentifier string

func (v LEIIdentifier) Validate() error { return leiRule.Check(string(v)) }

// IBAN2007Identifier is checked for shape only; the checksum is a business
// rule.
type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate() error { return ibanRule.Check(string(v)) }

// UUIDv4Identifier carries the UETR of a payment.
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate() error { return uuidv4Rule.Check(string(v)) }

type PhoneNumber string

func (v PhoneNumber) Validate() error { return phoneNumberRule.Check(string(v)) }
