package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.26", "1.2"},
		{"1.29", "1.2"},
		{"1.2", "1.2"},
		{"170.85", "170.8"},
		{"0", "0"},
		{"-1.26", "-1.3"}, // 向负无穷截断，不是向零
		{"-1.2", "-1.2"},
		{"6.4916666", "6.4"},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.in)
		got := Truncate(d)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("Truncate(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	for _, s := range []string{"1.26", "-1.26", "99.99", "-0.05", "0.04"} {
		once := Truncate(decimal.RequireFromString(s))
		twice := Truncate(once)
		if !once.Equal(twice) {
			t.Errorf("Truncate not idempotent for %s: %s != %s", s, once, twice)
		}
		if once.Exponent() < -1 {
			t.Errorf("Truncate(%s) kept more than one decimal digit: %s", s, once)
		}
	}
}

func TestDivTruncate(t *testing.T) {
	// 155.8 / 24 = 6.4916... -> 6.4
	got := DivTruncate(decimal.RequireFromString("155.8"), decimal.NewFromInt(24))
	if !got.Equal(decimal.RequireFromString("6.4")) {
		t.Errorf("DivTruncate = %s, want 6.4", got)
	}
}

func TestFromString(t *testing.T) {
	got, err := FromString("20.35")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("20.3")) {
		t.Errorf("FromString(20.35) = %s, want 20.3", got)
	}
	if _, err := FromString("abc"); err == nil {
		t.Error("FromString(abc) should fail")
	}
}

func TestOrZero(t *testing.T) {
	if !OrZero(decimal.NullDecimal{}).IsZero() {
		t.Error("OrZero(null) should be 0")
	}
	d := decimal.NullDecimal{Decimal: decimal.NewFromInt(3), Valid: true}
	if !OrZero(d).Equal(decimal.NewFromInt(3)) {
		t.Error("OrZero(3) should be 3")
	}
}
