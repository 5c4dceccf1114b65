// untag - normalize type-tagged JSON documents
//
// Reads one tagged JSON document from standard input, decodes it to
// plain JSON, and writes the result to standard output with 2-space
// indentation. A processing-time line is written to standard error.
//
// If the input is not valid JSON with an object at the top level, the
// tool prints "Invalid JSON input." to standard error and exits with
// status 1.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/tdehart/untag"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(in io.Reader, out, errw io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "untag"
	app.Usage = "normalize a type-tagged JSON document from standard input"
	app.HideVersion = true
	app.Writer = out
	app.ErrWriter = errw
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "location",
			Usage: "IANA time zone used to interpret timestamps (default: system local zone)",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Value: untag.DefaultMaxDepth,
			Usage: "maximum document nesting depth",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "report skipped malformed structures on standard error",
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, in, out, errw)
	}
	return app
}

func run(c *cli.Context, in io.Reader, out, errw io.Writer) error {
	start := time.Now()

	opts := []untag.ProcessorOption{
		untag.WithMaxDepth(c.Int("max-depth")),
	}

	if name := c.String("location"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			err = errors.Wrapf(err, "loading time zone %q", name)
			fmt.Fprintln(errw, err)
			return err
		}
		opts = append(opts, untag.WithLocation(loc))
	}

	if c.Bool("verbose") {
		opts = append(opts, untag.WithLogger(
			slog.New(slog.NewTextHandler(errw, nil)),
		))
	}

	data, err := io.ReadAll(in)
	if err != nil {
		err = errors.Wrap(err, "reading standard input")
		fmt.Fprintln(errw, err)
		return err
	}

	result, err := untag.NewProcessor(opts...).Transform(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, untag.ErrInvalidDocument) {
			fmt.Fprintln(errw, "Invalid JSON input.")
			return err
		}
		fmt.Fprintln(errw, err)
		return err
	}

	enc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(errw, err)
		return err
	}
	fmt.Fprintln(out, string(enc))

	fmt.Fprintf(errw, "\nProcessing Time: %.6f seconds\n", time.Since(start).Seconds())
	return nil
}
