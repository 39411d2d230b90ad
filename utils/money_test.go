package utils

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{6000, "$60"},
		{6050, "$60.50"},
		{6005, "$60.05"},
		{0, "$0"},
		{99, "$0.99"},
		{-2500, "-$25"},
		{-2550, "-$25.50"},
	}
	for _, tc := range cases {
		if got := FormatUSD(tc.cents); got != tc.want {
			t.Errorf("FormatUSD(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
