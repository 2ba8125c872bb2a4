//go:build !iso20022_nopacs

package catalog

import "github.com/open-payments/iso20022/pacs"

func init() { register("pacs", pacs.Kinds) }
