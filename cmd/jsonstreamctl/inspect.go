package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"

	jsonstream "github.com/streampkg/jsonstream"
)

const inspectLongDesc = `inspect walks a document with jsonstream.Visit and prints every scalar
along with its path, using k0kubun/pp for colorized, struct-aware
rendering of the values it finds. A non-empty object or array is not
printed itself, only its contents are; an empty one prints once as
<object> or <array>.`

type inspectCommand struct {
	Args struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes"`
}

func (c *inspectCommand) Execute(args []string) error {
	in := os.Stdin
	if c.Args.File != "" {
		f, err := os.Open(c.Args.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	v, err := jsonstream.Load(in, jsonstream.WithPersistent(true))
	if err != nil {
		return err
	}

	printer := pp.New()
	printer.SetColoringEnabled(isTerminal(os.Stdout))

	return jsonstream.Visit(v, func(value any, path jsonstream.Path) error {
		switch value.(type) {
		case jsonstream.Object:
			fmt.Printf("%s = <object>\n", path)
		case jsonstream.Array:
			fmt.Printf("%s = <array>\n", path)
		default:
			printer.Printf("%s = %v\n", path, value)
		}
		return nil
	})
}
