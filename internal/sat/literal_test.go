package sat

import "testing"

func TestPositiveNegativeLiteral(t *testing.T) {
	for v := Variable(0); v < 8; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d).IsPositive() = false, want true", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d).IsPositive() = true, want false", v)
		}
		if pos.Var() != v {
			t.Errorf("PositiveLiteral(%d).Var() = %d, want %d", v, pos.Var(), v)
		}
		if neg.Var() != v {
			t.Errorf("NegativeLiteral(%d).Var() = %d, want %d", v, neg.Var(), v)
		}
		if pos.Opposite() != neg {
			t.Errorf("PositiveLiteral(%d).Opposite() = %v, want %v", v, pos.Opposite(), neg)
		}
		if neg.Opposite() != pos {
			t.Errorf("NegativeLiteral(%d).Opposite() = %v, want %v", v, neg.Opposite(), pos)
		}
		if pos.Opposite().Opposite() != pos {
			t.Errorf("double Opposite() did not round-trip for variable %d", v)
		}
	}
}

func TestLiteral_String(t *testing.T) {
	tests := []struct {
		lit  Literal
		want string
	}{
		{PositiveLiteral(0), "0"},
		{NegativeLiteral(0), "!0"},
		{PositiveLiteral(7), "7"},
		{NegativeLiteral(7), "!7"},
	}
	for _, tc := range tests {
		if got := tc.lit.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.lit, got, tc.want)
		}
	}
}
