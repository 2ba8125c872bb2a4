package admi

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// SystemEventNotificationV02 is admi.004.001.02.
type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf"`
}

func (SystemEventNotificationV02) MessageID() string   { return "admi.004.001.02" }
func (SystemEventNotificationV02) RootElement() string { return "SysEvtNtfctn" }

func (m SystemEventNotificationV02) Validate() error {
	return iso.Fields(iso.Required("EvtInf", m.EvtInf))
}

type Event2 struct {
	EvtCd    dt.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []dt.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *dt.Max1000Text         `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *dt.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e Event2) Validate() error {
	return iso.Fields(
		iso.Required("EvtCd", e.EvtCd),
		iso.Repeated("EvtParam", e.EvtParam),
		iso.Optional("EvtDesc", e.EvtDesc),
	)
}
