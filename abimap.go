package abimap

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"abimap/abi"
	"abimap/selector"
)

type (
	Mapping struct {
		Selector  selector.Selector
		Signature string
	}

	// Map accumulates function mappings from one or more ABI documents.
	Map struct {
		list []Mapping

		bysel map[selector.Selector][]int
	}
)

func New() *Map {
	return &Map{
		bysel: map[selector.Selector][]int{},
	}
}

// ExtractFile reads a single ABI document and returns its function mappings.
func ExtractFile(ctx context.Context, name string) ([]Mapping, error) {
	m := New()

	err := m.AddFile(ctx, name)
	if err != nil {
		return nil, err
	}

	return m.Mappings(), nil
}

// Glob feeds every file matching the pattern into the map.
// No matches is not an error.
func (m *Map) Glob(ctx context.Context, pattern string) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "scan abi files", "pattern", pattern)
	defer tr.Finish("err", &err)

	files, err := filepath.Glob(pattern)
	if err != nil {
		return errors.Wrap(err, "glob %v", pattern)
	}

	for _, name := range files {
		err = m.AddFile(ctx, name)
		if err != nil {
			return errors.Wrap(err, "%v", name)
		}
	}

	return nil
}

func (m *Map) AddFile(ctx context.Context, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(data), "name", name)

	return m.Add(ctx, name, data)
}

// Add parses one document and appends a mapping for every function entry.
// Entries of any other kind are skipped.
func (m *Map) Add(ctx context.Context, name string, data []byte) error {
	d, err := abi.Parse(data)
	if err != nil {
		return errors.Wrap(err, "parse document")
	}

	for i, e := range d.ABI {
		if !e.IsFunction() {
			continue
		}

		sig, err := e.Signature()
		if err != nil {
			return errors.Wrap(err, "entry %v", i)
		}

		disp, err := e.DisplaySignature()
		if err != nil {
			return errors.Wrap(err, "entry %v", i)
		}

		sel := selector.FromSignature(sig)

		tlog.V("entry").Printw("function entry", "selector", sel, "sig", sig, "name", name, "from", loc.Caller(1))

		m.bysel[sel] = append(m.bysel[sel], len(m.list))
		m.list = append(m.list, Mapping{Selector: sel, Signature: disp})
	}

	return nil
}

func (m *Map) Mappings() []Mapping { return m.list }

// Lookup returns every scanned signature with the given selector,
// in the order the entries were added.
func (m *Map) Lookup(sel selector.Selector) []Mapping {
	idx := m.bysel[sel]
	if len(idx) == 0 {
		return nil
	}

	res := make([]Mapping, len(idx))

	for i, j := range idx {
		res[i] = m.list[j]
	}

	return res
}

// Render appends one output line per mapping.
func (m *Map) Render(b []byte) []byte {
	for _, x := range m.list {
		b = hfmt.Appendf(b, "[\"%v\", \"%v\"],\n", x.Selector, x.Signature)
	}

	return b
}
