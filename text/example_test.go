package text_test

import (
	"fmt"

	"github.com/ywlang/ywlib/text"
)

func ExampleEncodeUTF16() {
	s := text.FromString("A€😀")
	fmt.Printf("%04X\n", text.EncodeUTF16(s))
	// Output:
	// [0041 20AC D83D DE00]
}

func ExampleEncodeUTF8() {
	s := text.String{0x41, 0x20AC, 0x1F600}
	fmt.Printf("% X\n", text.EncodeUTF8(s))
	// Output:
	// 41 E2 82 AC F0 9F 98 80
}

func ExampleValidate() {
	err := text.Validate(text.String{'a', 0xD800})
	fmt.Println(err)
	// Output:
	// [validate] surrogate: surrogate 0xd800 at index 1
}
