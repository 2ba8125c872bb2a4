// Package admi holds the administration messages (rejects, system events,
// receipts, static data).
package admi

import iso "github.com/open-payments/iso20022"

// Kinds lists the admi message kinds.
func Kinds() []iso.Kind {
	return []iso.Kind{
		{ID: "admi.002.001.01", Root: "admi.002.001.01", New: func() iso.Message { return &Admi00200101{} }},
		{ID: "admi.004.001.02", Root: "SysEvtNtfctn", New: func() iso.Message { return &SystemEventNotificationV02{} }},
		{ID: "admi.007.001.01", Root: "RctAck", New: func() iso.Message { return &ReceiptAcknowledgementV01{} }},
		{ID: "admi.010.001.02", Root: "StatcDataRpt", New: func() iso.Message { return &StaticDataReportV02{} }},
	}
}
