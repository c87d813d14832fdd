package text_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/text"
)

func ExampleIsPalindrome() {
	for _, s := range []string{"racecar", "A man, a plan, a canal: Panama", "hello"} {
		fmt.Printf("Is '%s' a palindrome? %t\n", s, text.IsPalindrome(s))
	}
	// Output:
	// Is 'racecar' a palindrome? true
	// Is 'A man, a plan, a canal: Panama' a palindrome? true
	// Is 'hello' a palindrome? false
}
