package utils

import "testing"

func TestNextInvoiceNumber(t *testing.T) {
	cases := []struct {
		prefix string
		last   int
		want   string
	}{
		{"V", 0, "V000001"},
		{"V", 1, "V000002"},
		{"C", 0, "C000001"},
		{"C", 41, "C000042"},
		{"V", 999999, "V1000000"},
	}
	for _, c := range cases {
		if got := NextInvoiceNumber(c.prefix, c.last); got != c.want {
			t.Errorf("NextInvoiceNumber(%q, %d) = %q, want %q", c.prefix, c.last, got, c.want)
		}
	}
}
