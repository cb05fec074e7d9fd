package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"

	jsonstream "github.com/streampkg/jsonstream"
	"github.com/streampkg/jsonstream/jsonstream/encoding"
)

const catLongDesc = `cat lazily loads each document from the given files (or stdin) and
re-encodes it, one line per NDJSON record. Unlike hujsonfmt's
byte-for-byte formatting, cat always produces canonical JSON: comments
and non-standard layout (if jsonstream's strict parser even accepted
them) are not preserved.`

type catCommand struct {
	Encoder string `long:"encoder" choice:"std" choice:"jsoniter" choice:"sonic" default:"std" description:"Re-encoding backend"`
	Indent  string `long:"indent" description:"Indent string for pretty output with the std encoder; empty means compact, other encoders always write compact"`
	NDJSON  bool   `long:"ndjson" description:"Treat each input as a sequence of whitespace-delimited documents"`
}

func (c *catCommand) Execute(args []string) error {
	enc := encoding.ParseBackend(c.Encoder)
	if c.Indent != "" {
		if std, ok := enc.(encoding.StdBackend); ok {
			std.Indent = c.Indent
			enc = std
		}
	}

	out := colorableStdout()
	if len(args) == 0 {
		return catOne(out, os.Stdin, enc, c.NDJSON)
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		err = catOne(out, f, enc, c.NDJSON)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}

func catOne(out io.Writer, in io.Reader, enc encoding.Encoder, ndjson bool) error {
	if !ndjson {
		v, err := jsonstream.Load(in)
		if err != nil {
			return err
		}
		return writeEncoded(out, enc, jsonstream.ToStandardTypes(v))
	}
	for result := range jsonstream.LoadMany(in) {
		if result.Err != nil {
			return result.Err
		}
		if err := writeEncoded(out, enc, jsonstream.ToStandardTypes(result.Value)); err != nil {
			return err
		}
	}
	return nil
}

func writeEncoded(out io.Writer, enc encoding.Encoder, v any) error {
	b, err := enc.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", b)
	return err
}

// colorableStdout wraps os.Stdout so ANSI sequences other subcommands may
// eventually emit (e.g. a future --highlight on inspect) render correctly
// on Windows consoles too; on non-Windows it's a passthrough. Detecting a
// non-terminal stdout (piped to a file) is left to the caller of any
// color-emitting helper, via isTerminal.
func colorableStdout() io.Writer {
	return colorable.NewColorableStdout()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
