package scale_test

import (
	"fmt"

	"github.com/katalvlaran/phonetics/scale"
)

type vowelHeight int

func ExampleCircular_Advance() {
	heights := scale.NewCircular[vowelHeight]("height", 0, "open", "mid", "close")

	v := vowelHeight(2)
	fmt.Println(heights.Name(v), "->", heights.Name(heights.Advance(v, 1)))
	// Output: close -> open
}

func ExampleContinuous_Advance() {
	backness := scale.NewContinuous("backness", 0, 4)

	v, err := backness.Advance(3.5, 1)
	fmt.Println(v, err)
	// Output: 0 invalid feature value: backness 4.5 outside [0, 4]
}
