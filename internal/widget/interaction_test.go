package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		classes string
		want    Action
	}{
		{"add-cart", ActionAddToCart},
		{"wish", ActionToggleWish},
		{"remove", ActionRemove},
		{"remove wish", ActionToggleWish},
		{"wish add-cart remove", ActionAddToCart},
		{"btn primary", ActionNone},
		{"", ActionNone},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(ParseClasses(tc.classes)), tc.classes)
	}
}

func TestActionString(t *testing.T) {
	require.Equal(t, "add-to-cart", ActionAddToCart.String())
	require.Equal(t, "toggle-wish", ActionToggleWish.String())
	require.Equal(t, "remove", ActionRemove.String())
	require.Equal(t, "none", ActionNone.String())
}
