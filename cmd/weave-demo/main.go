package main

import (
	"fmt"

	"weave"
)

func main() {
	foobar := weave.Run(func(b weave.Buf) weave.Buf {
		return b.AppendString("foo").AppendString("bar")
	})
	fmt.Println(foobar.String())

	alsoFoobar := weave.Run(func(b weave.Buf) weave.Buf {
		b = b.PrependString("bar")
		b = b.PrependString("foo")
		return b
	})
	fmt.Println(alsoFoobar.String())

	joined := weave.Run(func(b weave.Buf) weave.Buf {
		b1, b2 := weave.Duplicate(b)
		b1 = b1.PrependString("foo")
		b2 = b2.AppendString("bar")
		return weave.Cat(b1, b2)
	})
	fmt.Println(joined.String())

	report := weave.Run(func(b weave.Buf) weave.Buf {
		b, aaa := weave.NewEmpty(b)
		aaa = aaa.AppendString("AAA").JustifyRight(12, ' ')

		b, bbb := weave.NewEmpty(b)
		bbb = bbb.AppendString("BBBBBBB").JustifyRight(12, ' ')

		b = b.AppendString("Test:")
		b = weave.Cat(b, aaa)
		b = weave.Cat(b, bbb)
		return b
	})
	fmt.Println(report.String())

	withNumbers := weave.Run(func(b weave.Buf) weave.Buf {
		b = weave.AppendInt(b, -128)
		b = b.AppendString(" ")
		b = weave.AppendHex(b, int32(255))
		b = b.AppendString(" ")
		return b.AppendFloat(0.1)
	})
	fmt.Println(withNumbers.String())
}
