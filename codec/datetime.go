package codec

import (
	"context"
	"fmt"
	"time"
)

// Codec converts between a wire value A and a domain value B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// ISODateTime returns a Codec between xs:dateTime strings and time.Time. The
// zone is optional on input; values without one are read as UTC.
func ISODateTime() Codec[string, time.Time] {
	return layoutCodec{
		name:   "ISODateTime",
		parse:  []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"},
		format: time.RFC3339Nano,
		utc:    true,
	}
}

// ISODate returns a Codec between xs:date strings and time.Time.
func ISODate() Codec[string, time.Time] {
	return layoutCodec{
		name:   "ISODate",
		parse:  []string{time.DateOnly, "2006-01-02Z07:00"},
		format: time.DateOnly,
	}
}

// ISOTime returns a Codec between xs:time strings and time.Time (on the zero
// date).
func ISOTime() Codec[string, time.Time] {
	return layoutCodec{
		name:   "ISOTime",
		parse:  []string{"15:04:05.999999999Z07:00", "15:04:05.999999999"},
		format: "15:04:05.999999999Z07:00",
		utc:    true,
	}
}

type layoutCodec struct {
	name   string
	parse  []string
	format string
	utc    bool
}

func (c layoutCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	var firstErr error
	for _, layout := range c.parse {
		t, err := time.Parse(layout, a)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("codec: invalid %s %q: %w", c.name, a, firstErr)
}

func (c layoutCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if b.IsZero() {
		return "", fmt.Errorf("codec: cannot encode zero time as %s", c.name)
	}
	// Normalize to UTC; Go trims trailing zeros of fractional seconds.
	if c.utc {
		b = b.UTC()
	}
	return b.Format(c.format), nil
}
