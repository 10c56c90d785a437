package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lower cases", input: "FRANCE", want: "france"},
		{name: "strips accents", input: "México", want: "mexico"},
		{name: "strips stacked accents", input: "Hà Nội", want: "ha noi"},
		{name: "hyphens become spaces", input: "Saint-Pierre", want: "saint pierre"},
		{name: "trims surrounding whitespace", input: "  Lima \t", want: "lima"},
		{name: "trailing hyphen trimmed", input: "Oslo-", want: "oslo"},
		{name: "keeps inner whitespace", input: "Port  Louis", want: "port  louis"},
		{name: "empty", input: "", want: ""},
		{name: "decomposes precomposed cedilla", input: "Curaçao", want: "curacao"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"Saint-Pierre", "  MÉXICO ", "Nuku'alofa", "São Tomé", "-Yaoundé-", "İstanbul"} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestSameAnswerEquivalences(t *testing.T) {
	t.Parallel()

	assert.True(t, SameAnswer("Saint-Pierre", "saint pierre"))
	assert.True(t, SameAnswer("SAINT-PIERRE", "Saint Pierre"))
	assert.True(t, SameAnswer("México", "mexico"))
	assert.True(t, SameAnswer("bogota ", "Bogotá"))
	assert.False(t, SameAnswer("Paris", "Pari"))
}
