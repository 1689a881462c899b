package sanitizer_test

import (
	"testing"

	"github.com/murcoder/helperkit/pkg/sanitizer"
)

func BenchmarkToKebabCase(b *testing.B) {
	input := "Some Mixed CASE input, with punctuation!"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizer.ToKebabCase(input)
	}
}

func BenchmarkToCamelCase(b *testing.B) {
	input := "some_snake_case_input_to_convert"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizer.ToCamelCase(input)
	}
}

func BenchmarkRemoveAccents(b *testing.B) {
	input := "Ångström café résumé naïve São Paulo"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizer.RemoveAccents(input)
	}
}

func BenchmarkStripHTML(b *testing.B) {
	input := "<p>hello <b>world</b> &amp; everyone</p>"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizer.StripHTML(input)
	}
}
