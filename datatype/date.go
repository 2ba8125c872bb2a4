package datatype

import (
	"context"
	"time"

	"github.com/open-payments/iso20022/codec"
)

// Dates are kept in their lexical form; format checks are left to the
// serializer, as with the other untyped scalars.
type (
	ISODate     string
	ISODateTime string
	ISOTime     string
)

// Time parses the date.
func (d ISODate) Time() (time.Time, error) {
	return codec.ISODate().Decode(context.Background(), string(d))
}

// Time parses the date and time.
func (d ISODateTime) Time() (time.Time, error) {
	return codec.ISODateTime().Decode(context.Background(), string(d))
}

// Time parses the time of day.
func (d ISOTime) Time() (time.Time, error) {
	return codec.ISOTime().Decode(context.Background(), string(d))
}

// DateOf formats t as an ISODate.
func DateOf(t time.Time) ISODate {
	s, _ := codec.ISODate().Encode(context.Background(), t)
	return ISODate(s)
}

// DateTimeOf formats t as an ISODateTime in UTC.
func DateTimeOf(t time.Time) ISODateTime {
	s, _ := codec.ISODateTime().Encode(context.Background(), t)
	return ISODateTime(s)
}
