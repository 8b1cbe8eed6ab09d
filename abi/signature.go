package abi

import (
	"strings"

	"tlog.app/go/errors"
)

// Signature is the canonical form the selector is derived from:
// name(t1,t2) with no spaces and tuple types collapsed into their
// component types, keeping any array suffix.
func (e Entry) Signature() (string, error) {
	if e.Name == "" {
		return "", errors.New("entry without a name")
	}

	var b strings.Builder

	b.WriteString(e.Name)
	b.WriteByte('(')

	for i, p := range e.Inputs {
		if i != 0 {
			b.WriteByte(',')
		}

		t, err := p.Canonical()
		if err != nil {
			return "", errors.Wrap(err, "input %v", i)
		}

		b.WriteString(t)
	}

	b.WriteByte(')')

	return b.String(), nil
}

// DisplaySignature is the human-readable form: declared types as written
// in the document, joined with a comma and a space.
func (e Entry) DisplaySignature() (string, error) {
	if e.Name == "" {
		return "", errors.New("entry without a name")
	}

	types := make([]string, len(e.Inputs))

	for i, p := range e.Inputs {
		if p.Type == "" {
			return "", errors.New("input %v without a type", i)
		}

		types[i] = p.Type
	}

	return e.Name + "(" + strings.Join(types, ", ") + ")", nil
}

// Canonical resolves the parameter type for hashing. Tuples become
// (c1,c2,...); tuple[2][] becomes (c1,c2,...)[2][].
func (p Parameter) Canonical() (string, error) {
	if p.Type == "" {
		return "", errors.New("parameter without a type")
	}

	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type, nil
	}

	suffix := p.Type[len("tuple"):]

	var b strings.Builder

	b.WriteByte('(')

	for i, c := range p.Components {
		if i != 0 {
			b.WriteByte(',')
		}

		t, err := c.Canonical()
		if err != nil {
			return "", errors.Wrap(err, "component %v", i)
		}

		b.WriteString(t)
	}

	b.WriteByte(')')
	b.WriteString(suffix)

	return b.String(), nil
}
