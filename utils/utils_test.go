package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Algebra 101", "algebra-101"},
		{"  Intro to Go!  ", "intro-to-go"},
		{"C++ / Systems Programming", "c-systems-programming"},
		{"---", ""},
		{"UPPER case", "upper-case"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
