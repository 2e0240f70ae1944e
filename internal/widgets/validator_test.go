package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrValidator(t *testing.T) {
	tests := []struct {
		name  string
		v     StrValidator
		value string
		want  error
	}{
		{"empty rejected by zero min", StrValidator{Min: 0, Max: 10}, "", ErrTooShort},
		{"one rune", StrValidator{Min: 0, Max: 10}, "a", nil},
		{"at max", StrValidator{Min: 0, Max: 3}, "abc", nil},
		{"over max", StrValidator{Min: 0, Max: 3}, "abcd", ErrTooLong},
		{"at min", StrValidator{Min: 2, Max: 10}, "ab", ErrTooShort},
		{"runes not bytes", StrValidator{Min: 0, Max: 2}, "жж", nil},
		{"default accepts long", DefaultStrValidator(), strings.Repeat("x", 1000), nil},
		{"default rejects empty", DefaultStrValidator(), "", ErrTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.value)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNopValidator(t *testing.T) {
	assert.NoError(t, NopValidator{}.Validate(""))
}
