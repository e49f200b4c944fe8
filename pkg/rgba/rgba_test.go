package rgba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRgba(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hex   string
		alpha float64
		want  string
	}{
		{name: "twitter blue half", hex: "#1DA1F2", alpha: 0.5, want: "rgba(29, 161, 242, 0.5)"},
		{name: "no hash", hex: "ececec", alpha: 0.9, want: "rgba(236, 236, 236, 0.9)"},
		{name: "lowercase", hex: "#dcf8c6", alpha: 1, want: "rgba(220, 248, 198, 1)"},
		{name: "opaque black", hex: "#000000", alpha: 0, want: "rgba(0, 0, 0, 0)"},
		{name: "malformed never panics", hex: "#zzz", alpha: 0.3, want: "rgba(0, 0, 0, 0.3)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ToRgba(tt.hex, tt.alpha))
		})
	}
}
