// Package iso20022 provides:
//
// - Leaf constraint rules (length, pattern, enumeration, numeric bounds) with stable codes
// - Fail-fast recursive validation of typed records (Fields/Required/Optional/Repeated)
// - Choice groups that hold exactly one alternative
// - The Document envelope over every compiled-in message kind plus an Unknown sentinel
// - A Registry resolving kinds from XML/JSON by namespace or root element
//
// Design policy:
// - Keep the engine in the root package; message families live in their own packages
//   (admi, camt, head, pacs) and shared data types in datatype.
// - Family selection happens at build time in catalog (build tags iso20022_no<family>).
// - No package-level mutable state; validation never mutates its input.
//
// Typical usage:
//
//	reg := catalog.Registry()
//	doc, err := reg.ParseXML(data)
//	if err := doc.Validate(); err != nil {
//		ve, _ := iso20022.AsValidationError(err)
//		fmt.Println(ve.Code, ve.Path, ve.Message())
//	}
package iso20022
