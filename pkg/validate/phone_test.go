package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"International", "+821012345678", true},
		{"No Plus", "821012345678", true},
		{"Minimum Length", "123456789", true},
		{"Too Short", "12345678", false},
		{"Too Long", "1234567890123456", false},
		{"Letters", "+8210abcd5678", false},
		{"Spaces", "+82 10 1234 5678", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPhone(tt.phone))
		})
	}
}
