package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_Translate(t *testing.T) {
	t.Parallel()

	tr := NewTranslator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word", input: "Pollo", want: "chicken"},
		{name: "accented word", input: "LIMÓN", want: "lemon"},
		{name: "accent omitted by user", input: "limon", want: "lemon"},
		{name: "tilde folded", input: "piña", want: "pineapple"},
		{name: "compound simplified first", input: "Aceite de Oliva", want: "oil"},
		{name: "compound beats dictionary phrase", input: "crema agria", want: "cream"},
		{name: "dictionary phrase", input: "vino tinto", want: "red wine"},
		{name: "word lookup skips unknown words", input: "pechuga de pollo", want: "chicken"},
		{name: "word lookup with adjective", input: "zanahorias frescas", want: "carrot"},
		{name: "singular bean", input: "frijol", want: "beans"},
		{name: "dessert", input: "Helado", want: "ice cream"},
		{name: "accented dessert", input: "almíbar", want: "syrup"},
		{name: "fried potatoes phrase", input: "papas fritas", want: "potato chips"},
		{name: "wine vinegar", input: "vinagre de vino", want: "vinegar"},
		{name: "vegetable stock", input: "Caldo de Verduras", want: "vegetable"},
		{name: "white pepper", input: "pimienta blanca", want: "pepper"},
		{name: "plain yogurt", input: "yogur natural", want: "yogurt"},
		{name: "almond milk", input: "leche de almendra", want: "milk"},
		{name: "plantain", input: "plátano macho", want: "banana"},
		{name: "shared english word", input: "banana", want: "banana"},
		{name: "english passes through", input: "Chicken Breast", want: "chicken breast"},
		{name: "whitespace collapsed", input: "  olive   oil ", want: "olive oil"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tr.Translate(tc.input))
		})
	}
}

func TestTranslator_TranslateAll(t *testing.T) {
	t.Parallel()

	got := NewTranslator().TranslateAll([]string{"arroz", "rice", "queso crema"})
	assert.Equal(t, []string{"rice", "rice", "cheese"}, got)
}

func TestTranslator_FeedsNormalizer(t *testing.T) {
	t.Parallel()

	tr := NewTranslator()
	assert.Equal(t, "bell pepper", Normalize(tr.Translate("pimiento morrón")))
	assert.Equal(t, "soy", Normalize(tr.Translate("salsa de soya")))
}
