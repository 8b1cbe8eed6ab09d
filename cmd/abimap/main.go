package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"abimap"
	"abimap/selector"
)

func main() {
	refreshCmd := &cli.Command{
		Name:        "refresh",
		Description: "print the selector map for all abi files in the current directory",
		Action:      refreshAct,
		Args:        cli.Args{},
	}

	lookupCmd := &cli.Command{
		Name:        "lookup",
		Description: "resolve 4-byte selectors against the abi files in the current directory",
		Action:      lookupAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "abimap",
		Description: "abimap derives function selectors from contract abi files",
		Action:      refreshAct,
		Commands: []*cli.Command{
			refreshCmd,
			lookupCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func refreshAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	m, err := scan(ctx)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(m.Render(nil))
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}

func lookupAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	m, err := scan(ctx)
	if err != nil {
		return err
	}

	return lookup(m, c.Args, os.Stdout)
}

func lookup(m *abimap.Map, args []string, w io.Writer) error {
	for _, a := range args {
		sel, err := selector.Parse(a)
		if err != nil {
			return errors.Wrap(err, "selector %v", a)
		}

		matches := m.Lookup(sel)
		if len(matches) == 0 {
			fmt.Fprintf(w, "%v <not found>\n", sel)
			continue
		}

		for _, x := range matches {
			fmt.Fprintf(w, "%v %v\n", x.Selector, x.Signature)
		}
	}

	return nil
}

func scan(ctx context.Context) (*abimap.Map, error) {
	m := abimap.New()

	err := m.Glob(ctx, "*.json")
	if err != nil {
		return nil, errors.Wrap(err, "scan abi files")
	}

	return m, nil
}
