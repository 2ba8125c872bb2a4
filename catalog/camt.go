//go:build !iso20022_nocamt

package catalog

import "github.com/open-payments/iso20022/camt"

func init() { register("camt", camt.Kinds) }
