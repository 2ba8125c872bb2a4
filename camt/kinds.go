package camt

import iso "github.com/open-payments/iso20022"

// Kinds lists the camt message kinds.
func Kinds() []iso.Kind {
	return []iso.Kind{
		{ID: "camt.060.001.05", Root: "AcctRptgReq", New: func() iso.Message { return &AccountReportingRequestV05{} }},
	}
}
