// Package pacs holds the payments clearing and settlement messages.
package pacs

import iso "github.com/open-payments/iso20022"

// Kinds lists the pacs message kinds.
func Kinds() []iso.Kind {
	return []iso.Kind{
		{ID: "pacs.002.001.10", Root: "FIToFIPmtStsRpt", New: func() iso.Message { return &FIToFIPaymentStatusReportV10{} }},
		{ID: "pacs.008.001.08", Root: "FIToFICstmrCdtTrf", New: func() iso.Message { return &FIToFICustomerCreditTransferV08{} }},
	}
}
