package datatype

import iso "github.com/open-payments/iso20022"

// SupplementaryData1 carries market-specific extensions.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

func (s SupplementaryData1) Validate() error {
	return iso.Fields(
		iso.Optional("PlcAndNm", s.PlcAndNm),
		iso.Required("Envlp", s.Envlp),
	)
}

// SupplementaryDataEnvelope1 keeps its foreign content verbatim.
type SupplementaryDataEnvelope1 struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

func (SupplementaryDataEnvelope1) Validate() error { return nil }
