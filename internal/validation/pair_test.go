package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePair_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		pair    string
		wantErr error
	}{
		{name: "valid upper", pair: "BTCUSDT", wantErr: nil},
		{name: "valid lower", pair: "ethusdt", wantErr: nil},
		{name: "valid mixed with digits", pair: "1INCHUSDT", wantErr: nil},
		{name: "valid single char", pair: "A", wantErr: nil},
		{name: "valid at limit", pair: strings.Repeat("A", 20), wantErr: nil},
		{name: "valid unicode letters", pair: "ビット1", wantErr: nil},
		{name: "empty", pair: "", wantErr: ErrPairEmpty},
		{name: "too long", pair: strings.Repeat("A", 21), wantErr: ErrPairTooLong},
		{name: "dash", pair: "BTC-USDT", wantErr: ErrPairNotAlphanum},
		{name: "slash", pair: "BTC/USDT", wantErr: ErrPairNotAlphanum},
		{name: "inner space", pair: "BTC USDT", wantErr: ErrPairNotAlphanum},
		{name: "leading space not trimmed", pair: " BTCUSDT", wantErr: ErrPairNotAlphanum},
		{name: "sql-ish input", pair: "x';DROP", wantErr: ErrPairNotAlphanum},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePair(tc.pair)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidatePair(%q) = %v, want nil", tc.pair, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ValidatePair(%q) = %v, want %v", tc.pair, err, tc.wantErr)
			}
		})
	}
}

// Rules are checked in order: an empty string is reported as empty, and an
// over-long string with bad characters is reported as too long.
func TestValidatePair_RuleOrder(t *testing.T) {
	long := strings.Repeat("-", 30)
	if err := ValidatePair(long); !errors.Is(err, ErrPairTooLong) {
		t.Fatalf("got %v, want ErrPairTooLong", err)
	}
}

// Length is counted in characters, not bytes: 20 multi-byte runes pass.
func TestValidatePair_RuneLength(t *testing.T) {
	pair := strings.Repeat("ア", 20)
	if err := ValidatePair(pair); err != nil {
		t.Fatalf("20-rune pair rejected: %v", err)
	}
	if err := ValidatePair(pair + "ア"); !errors.Is(err, ErrPairTooLong) {
		t.Fatalf("21-rune pair: got %v, want ErrPairTooLong", err)
	}
}
