//go:build !iso20022_nohead

package catalog

import "github.com/open-payments/iso20022/head"

func init() { register("head", head.Kinds) }
