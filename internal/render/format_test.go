package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{1500, "1.5k"},
		{10500, "10.5k"},
		{999999, "1000k"},
		{1000000, "1M"},
		{1200000, "1.2M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCount(tt.in), "formatCount(%d)", tt.in)
	}
}
