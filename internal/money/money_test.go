package money

import (
	"testing"

	"shopwidget/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatDefaultLocale(t *testing.T) {
	f := MustDefault()

	cases := map[int64]string{
		0:      "€0,00",
		550:    "€5,50",
		2000:   "€20,00",
		123450: "€1.234,50",
	}
	for cents, want := range cases {
		require.Equal(t, want, f.Format(cents), "cents=%d", cents)
	}
}

func TestNewRejectsUnknownCurrency(t *testing.T) {
	_, err := New("nl-BE", "XYZW", "")
	require.Error(t, err)
}

func TestNewRejectsBadLocale(t *testing.T) {
	_, err := New("not a locale!", "EUR", "")
	require.Error(t, err)
}

func TestSymbolFallsBackToCode(t *testing.T) {
	f, err := New("en", "USD", "")
	require.NoError(t, err)
	require.Equal(t, "USD", f.Currency())
	require.Equal(t, "USD12.00", f.Format(1200))
}

func TestParseCents(t *testing.T) {
	ok := map[string]int64{
		"10.00": 1000,
		"5.5":   550,
		"5,50":  550,
		" 0 ":   0,
		"19.99": 1999,
		"1000000000.00": MaxCents,
	}
	for in, want := range ok {
		got, err := ParseCents(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "-1", "NaN", "Inf", "1000000000.01", "1e17", "1e300", "92233720368547758.07"} {
		_, err := ParseCents(in)
		require.ErrorIs(t, err, domain.ErrInvalidPrice, in)
	}
}
