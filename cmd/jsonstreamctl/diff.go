package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	jsonstream "github.com/streampkg/jsonstream"
)

const diffLongDesc = `diff loads two JSON documents and compares their canonical form (keys
re-sorted, whitespace normalized) rather than their byte layout, so
"{"a":1,"b":2}" and a reformatted "{ "b": 2, "a": 1 }" across two files
are reported as equal. Internally it's the same gotextdiff/myers engine
hujsonfmt uses for its -d flag.`

type diffCommand struct {
	Args struct {
		Left  string `positional-arg-name:"left"`
		Right string `positional-arg-name:"right"`
	} `positional-args:"yes" required:"yes"`
}

func (c *diffCommand) Execute(args []string) error {
	left, err := canonicalJSON(c.Args.Left)
	if err != nil {
		return err
	}
	right, err := canonicalJSON(c.Args.Right)
	if err != nil {
		return err
	}

	edits := myers.ComputeEdits(span.URIFromPath(c.Args.Left), left, right)
	unified := gotextdiff.ToUnified(c.Args.Left, c.Args.Right, left, edits)
	out := fmt.Sprint(unified)
	if out == "" {
		return nil
	}
	fmt.Print(out)
	return nil
}

func canonicalJSON(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	v, err := jsonstream.Load(f)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(jsonstream.ToStandardTypes(v), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
