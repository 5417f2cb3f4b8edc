package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/d1ced/jsonval"
)

const version = "1.0.0"

// CLI defines the command line interface.
var CLI struct {
	Input    string `arg:"" optional:"" help:"Path to the input document. Reads stdin when omitted." type:"path"`
	Output   string `help:"Path to the output file. Writes to stdout when omitted." short:"o" type:"path"`
	Compact  bool   `help:"Emit compact output with no whitespace." short:"c"`
	Indent   string `help:"Indent step for pretty output." default:"  "`
	Scalar   bool   `help:"Accept a bare scalar as the whole document." short:"s"`
	Validate bool   `help:"Parse only; produce no output."`
	Quiet    bool   `help:"Suppress duplicate key diagnostics." short:"q"`
	Version  bool   `help:"Show version information." short:"v"`
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonfmt"),
		kong.Description("Reformat JSON documents, keeping numeric precision and member order intact."),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonfmt version %s\n", version)
		return
	}

	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
		os.Exit(1)
	}
}

// run executes one reformat pass with the global CLI configuration.
func run(stdin io.Reader, stdout, stderr io.Writer) error {
	logger := log.Logger(log.NewNopLogger())
	if !CLI.Quiet {
		logger = level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(stderr)), level.AllowWarn())
	}
	parser := jsonval.NewParser(jsonval.WithLogger(logger))

	data, err := readInput(stdin)
	if err != nil {
		return err
	}

	var v *jsonval.Value
	if CLI.Scalar {
		v, err = parser.ParseValueBytes(data)
	} else {
		v, err = parser.ParseBytes(data)
	}
	if err != nil {
		return err
	}
	if CLI.Validate {
		return nil
	}

	buf := &bytes.Buffer{}
	if CLI.Compact {
		_, err = v.Write(buf)
	} else {
		_, err = v.WritePretty(buf, CLI.Indent)
	}
	if err != nil {
		return err
	}
	buf.WriteByte('\n')

	return writeOutput(stdout, buf.Bytes())
}

// readInput reads the document from the input file or stdin.
func readInput(stdin io.Reader) ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		return data, errors.Wrapf(err, "reading %s", CLI.Input)
	}
	data, err := io.ReadAll(stdin)
	return data, errors.Wrap(err, "reading stdin")
}

// writeOutput writes the rendered document to the output file or stdout.
func writeOutput(stdout io.Writer, data []byte) error {
	if CLI.Output != "" {
		return errors.Wrapf(os.WriteFile(CLI.Output, data, 0o644), "writing %s", CLI.Output)
	}
	_, err := stdout.Write(data)
	return errors.Wrap(err, "writing to stdout")
}
