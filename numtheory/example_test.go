package numtheory_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/numtheory"
)

func ExampleGCD() {
	fmt.Println("GCD of 48 and 18:", numtheory.GCD(48, 18))
	// Output:
	// GCD of 48 and 18: 6
}
