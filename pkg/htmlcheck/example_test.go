package htmlcheck_test

import (
	"fmt"

	"github.com/murcoder/helperkit/pkg/htmlcheck"
)

func ExampleIsAllowed() {
	allowed := []string{"p", "a", "em"}

	fmt.Println(htmlcheck.IsAllowed("<p>hello <em>world</em></p>", allowed))
	fmt.Println(htmlcheck.IsAllowed("<p>hi</p><script>evil()</script>", allowed))
	// Output:
	// true
	// false
}

func ExampleTags() {
	fmt.Println(htmlcheck.Tags("<p>a</p><em>b</em><p>c</p>"))
	// Output:
	// [em p]
}
