package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// printRaw writes a remote response body to stdout exactly as the service
// returned it.
func printRaw(raw json.RawMessage) error {
	out := bytes.TrimRight(raw, "\n")
	_, err := fmt.Fprintf(os.Stdout, "%s\n", out)
	return err
}

// printIndented pretty-prints a remote JSON document without re-encoding
// it through a Go type, so no fields are dropped or reordered.
func printIndented(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "    "); err != nil {
		return printRaw(raw)
	}
	_, err := fmt.Fprintf(os.Stdout, "%s\n", buf.Bytes())
	return err
}
