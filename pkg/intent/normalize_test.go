package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUtterance(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantStripped string
	}{
		{"lowercases and trims", "  Show Floods in Assam  ", "show floods in assam"},
		{"drops punctuation", "Where are the floods, in Assam?", "where are the floods in assam"},
		{"collapses whitespace", "floods   in\tassam", "floods in assam"},
		{"folds diacritics", "cafés in Chánd", "cafes in chand"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUtterance(tt.raw)
			assert.Equal(t, tt.raw, u.Raw)
			assert.Equal(t, tt.wantStripped, u.Stripped)
		})
	}
}
