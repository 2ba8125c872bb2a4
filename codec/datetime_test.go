package codec

import (
	"context"
	"testing"
	"time"
)

func TestISODateTime_Codec_Basic(t *testing.T) {
	c := ISODateTime()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestISODateTime_ZonelessIsUTC(t *testing.T) {
	got, err := ISODateTime().Decode(context.Background(), "2024-05-01T10:11:12.5")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Location() != time.UTC || got.Nanosecond() != 500000000 {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestISODateTime_EncodeNormalizesToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	out, err := ISODateTime().Encode(context.Background(), time.Date(2024, 5, 1, 5, 0, 0, 0, est))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestISODate_Forms(t *testing.T) {
	c := ISODate()
	ctx := context.Background()
	for _, in := range []string{"2024-02-29", "2024-02-29Z", "2024-02-29-05:00"} {
		if _, err := c.Decode(ctx, in); err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
	}
	if _, err := c.Decode(ctx, "2023-02-29"); err == nil {
		t.Fatalf("expected error for a day that does not exist")
	}
}

func TestISOTime_Decode(t *testing.T) {
	got, err := ISOTime().Decode(context.Background(), "13:45:00Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Hour() != 13 || got.Minute() != 45 {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestEncode_ZeroTime_Error(t *testing.T) {
	if _, err := ISODate().Encode(context.Background(), time.Time{}); err == nil {
		t.Fatalf("expected error for the zero time")
	}
}
