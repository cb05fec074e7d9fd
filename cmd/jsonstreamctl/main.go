// Command jsonstreamctl is a small CLI over the jsonstream library,
// adapted from tailscale-hujson's cmd/hujsonfmt: where hujsonfmt has one
// job (reformat HuJSON), jsonstreamctl has four (cat/diff/inspect/serve),
// so subcommands replace hujsonfmt's flat flag set, and go-flags replaces
// the standard library's flag package to get that for free.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Show verbose diagnostics on stderr"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.AddCommand("cat", "Re-encode JSON/NDJSON input", catLongDesc, &catCommand{})
	parser.AddCommand("diff", "Diff two JSON documents by canonical value, not by byte layout", diffLongDesc, &diffCommand{})
	parser.AddCommand("inspect", "Pretty-print the lazily-parsed structure of a document", inspectLongDesc, &inspectCommand{})
	parser.AddCommand("serve", "Run the NDJSON ingestion HTTP service", serveLongDesc, &serveCommand{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
