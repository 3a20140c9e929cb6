package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested string
		candidate string
		want      bool
	}{
		{name: "exact", requested: "chicken", candidate: "chicken", want: true},
		{name: "exact ignores case", requested: "Chicken", candidate: "CHICKEN", want: true},
		{name: "candidate contains requested", requested: "chicken", candidate: "chicken thighs", want: true},
		{name: "rice in basmati rice", requested: "rice", candidate: "basmati rice", want: true},
		{name: "requested contains candidate", requested: "chicken breast", candidate: "chicken", want: true},
		{name: "plural", requested: "egg", candidate: "eggs", want: true},
		{name: "plural reversed", requested: "tomatoes", candidate: "tomatoe", want: true},
		{name: "base to variant", requested: "fish", candidate: "salmon", want: true},
		{name: "variant to base", requested: "haddock", candidate: "fish", want: true},
		{name: "cheese variant", requested: "cheese", candidate: "mozzarella", want: true},
		{name: "pasta variant", requested: "pasta", candidate: "Spaghetti", want: true},
		{name: "unrelated", requested: "beef", candidate: "pork", want: false},
		{name: "empty requested", requested: "", candidate: "salt", want: false},
		{name: "empty candidate", requested: "salt", candidate: "", want: false},
		{name: "oil base needs listed variant", requested: "oil", candidate: "canola", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Matches(tc.requested, tc.candidate))
		})
	}
}

// Known limitation: two variants of the same base never match each other,
// only a base against one of its variants does.
func TestMatches_VariantsOfSameBaseDoNotMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, Matches("fish", "salmon"))
	assert.True(t, Matches("fish", "tuna"))
	assert.False(t, Matches("salmon", "tuna"))
	assert.False(t, Matches("spaghetti", "penne"))
}

func TestMatches_SymmetricForTextualRules(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"chicken", "chicken thighs"},
		{"egg", "eggs"},
		{"garlic", "garlic"},
		{"beef", "pork"},
	}
	for _, p := range pairs {
		assert.Equal(t, Matches(p[0], p[1]), Matches(p[1], p[0]), "pair %v", p)
	}
}
