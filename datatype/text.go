// Package datatype holds the ISO 20022 data types shared by the message
// families: constrained text and identifiers, code sets, amounts, dates, and
// the party, agent and account building blocks.
package datatype

import iso "github.com/open-payments/iso20022"

var (
	max4TextRule     = iso.Text("Max4Text").Length(1, 4)
	max16TextRule    = iso.Text("Max16Text").Length(1, 16)
	max34TextRule    = iso.Text("Max34Text").Length(1, 34)
	max35TextRule    = iso.Text("Max35Text").Length(1, 35)
	max70TextRule    = iso.Text("Max70Text").Length(1, 70)
	max105TextRule   = iso.Text("Max105Text").Length(1, 105)
	max128TextRule   = iso.Text("Max128Text").Length(1, 128)
	max140TextRule   = iso.Text("Max140Text").Length(1, 140)
	max350TextRule   = iso.Text("Max350Text").Length(1, 350)
	max1000TextRule  = iso.Text("Max1000Text").Length(1, 1000)
	max2048TextRule  = iso.Text("Max2048Text").Length(1, 2048)
	max20000TextRule = iso.Text("Max20000Text").Length(1, 20000)

	max15NumericTextRule       = iso.Text("Max15NumericText").Pattern(`[0-9]{1,15}`)
	max4AlphaNumericTextRule   = iso.Text("Max4AlphaNumericText").Length(1, 4).Pattern(`[a-zA-Z0-9]{1,4}`)
	exact4AlphaNumericTextRule = iso.Text("Exact4AlphaNumericText").Pattern(`[a-zA-Z0-9]{4}`)
)

type Max4Text string

func (v Max4Text) Validate() error { return max4TextRule.Check(string(v)) }

type Max16Text string

func (v Max16Text) Validate() error { return max16TextRule.Check(string(v)) }

type Max34Text string

func (v Max34Text) Validate() error { return max34TextRule.Check(string(v)) }

// Max35Text is the most common identifier text: 1 to 35 characters.
type Max35Text string

func (v Max35Text) Validate() error { return max35TextRule.Check(string(v)) }

type Max70Text string

func (v Max70Text) Validate() error { return max70TextRule.Check(string(v)) }

type Max105Text string

func (v Max105Text) Validate() error { return max105TextRule.Check(string(v)) }

type Max128Text string

func (v Max128Text) Validate() error { return max128TextRule.Check(string(v)) }

type Max140Text string

func (v Max140Text) Validate() error { return max140TextRule.Check(string(v)) }

type Max350Text string

func (v Max350Text) Validate() error { return max350TextRule.Check(string(v)) }

type Max1000Text string

func (v Max1000Text) Validate() error { return max1000TextRule.Check(string(v)) }

type Max2048Text string

func (v Max2048Text) Validate() error { return max2048TextRule.Check(string(v)) }

type Max20000Text string

func (v Max20000Text) Validate() error { return max20000TextRule.Check(string(v)) }

// Max15NumericText is a count such as NbOfTxs: 1 to 15 digits.
type Max15NumericText string

func (v Max15NumericText) Validate() error { return max15NumericTextRule.Check(string(v)) }

type Max4AlphaNumericText string

func (v Max4AlphaNumericText) Validate() error { return max4AlphaNumericTextRule.Check(string(v)) }

type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate() error { return exact4AlphaNumericTextRule.Check(string(v)) }
