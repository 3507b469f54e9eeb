package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualStrings(t *testing.T) {
	a := "markdown body"
	b := "markdown body"
	c := "changed body"
	empty := ""

	tests := []struct {
		name string
		a    *string
		b    *string
		want bool
	}{
		{"Both nil", nil, nil, true},
		{"Left nil", nil, &a, false},
		{"Right nil", &a, nil, false},
		{"Equal values", &a, &b, true},
		{"Different values", &a, &c, false},
		{"Nil vs empty", nil, &empty, false},
		{"Empty vs empty", &empty, StringPtr(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualStrings(tt.a, tt.b))
		})
	}
}
