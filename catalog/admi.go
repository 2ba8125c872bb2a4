//go:build !iso20022_noadmi

package catalog

import "github.com/open-payments/iso20022/admi"

func init() { register("admi", admi.Kinds) }
