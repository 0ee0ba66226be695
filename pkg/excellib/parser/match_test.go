package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"identical strings", "Test", "Test", true},
		{"identical digits", "123", "123", true},
		{"surrounding spaces", " Test ", "Test", true},
		{"tabs and newlines", "\tHello\n", "Hello", true},
		{"case differs", "Test", "test", false},
		{"different digits", "123", "124", false},
		{"equal ints", int64(5), int64(5), true},
		{"different ints", int64(5), int64(10), false},
		{"int vs string", int64(5), "5", false},
		{"float vs string", 3.14, "3.14", false},
		{"nil vs string", nil, "Test", false},
		{"nil vs nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.a, tt.b))
		})
	}
}
