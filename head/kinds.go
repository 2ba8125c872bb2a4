package head

import iso "github.com/open-payments/iso20022"

// Kinds lists the head message kinds.
func Kinds() []iso.Kind {
	return []iso.Kind{
		{ID: "head.001.001.02", Root: "AppHdr", New: func() iso.Message { return &BusinessApplicationHeaderV02{} }},
	}
}
