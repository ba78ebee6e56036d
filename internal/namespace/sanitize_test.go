package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "zbox", "zbox"},
		{"spaces and symbols", "My Component!!", "my_component"},
		{"all symbols", "---", ""},
		{"mixed case", "VyOS", "vyos"},
		{"leading trailing symbols", "__esxi-01__", "esxi_01"},
		{"digits kept", "esxi11", "esxi11"},
		{"dots", "vcsa.lab.local", "vcsa_lab_local"},
		{"empty", "", ""},
		{"unicode", "café", "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"My Component!!", "---", "zbox", "a b c", "__x__", "café au lait"}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "Sanitize should be idempotent for %q", in)
	}
}
