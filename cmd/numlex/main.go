// Command numlex reads one line from standard input and prints the longest
// numeric literal at its start, as the token kind immediately followed by the
// literal:
//
//	$ echo 0xabc | numlex
//	INT0xabc
//	$ echo 10.3kg | numlex
//	DEC10.3
//	$ echo . | numlex
//	ERR
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("numlex"),
		kong.Description("Print the longest numeric literal at the start of a line read from standard input."),
	)
	ctx.FatalIfErrorf(params.run(os.Stdin, os.Stdout, os.Stderr))
}
