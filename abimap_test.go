package abimap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abimap"
	"abimap/selector"
)

const tokenABI = `{
	"abi": [
		{"type": "constructor", "inputs": [{"name": "supply", "type": "uint256"}]},
		{"type": "function", "name": "transfer", "inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		]},
		{"type": "event", "name": "Transfer", "inputs": []},
		{"type": "function", "name": "totalSupply", "inputs": []}
	]
}`

func TestAddRender(t *testing.T) {
	ctx := context.Background()

	m := abimap.New()

	err := m.Add(ctx, "token.json", []byte(tokenABI))
	require.NoError(t, err)

	want := `["0xa9059cbb", "transfer(address, uint256)"],
["0x18160ddd", "totalSupply()"],
`
	assert.Equal(t, want, string(m.Render(nil)))
}

func TestAddOnlyFunctions(t *testing.T) {
	ctx := context.Background()

	m := abimap.New()

	err := m.Add(ctx, "x.json", []byte(`{"abi": [
		{"type": "event", "name": "Ping", "inputs": []},
		{"type": "fallback"},
		{"type": "error", "name": "Nope", "inputs": []}
	]}`))
	require.NoError(t, err)
	assert.Empty(t, m.Mappings())
	assert.Empty(t, m.Render(nil))
}

func TestAddErrors(t *testing.T) {
	ctx := context.Background()

	err := abimap.New().Add(ctx, "x.json", []byte(`{"bytecode": "0x"}`))
	require.Error(t, err)

	err = abimap.New().Add(ctx, "x.json", []byte(`not json`))
	require.Error(t, err)

	err = abimap.New().Add(ctx, "x.json", []byte(`{"abi": [{"type": "function"}]}`))
	require.Error(t, err)
}

func TestGlob(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"abi": [
		{"type": "function", "name": "balanceOf", "inputs": [{"name": "owner", "type": "address"}]}
	]}`), 0o644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "b.json"), []byte(tokenABI), 0o644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte(`not abi`), 0o644)
	require.NoError(t, err)

	m := abimap.New()

	err = m.Glob(ctx, filepath.Join(dir, "*.json"))
	require.NoError(t, err)

	want := `["0x70a08231", "balanceOf(address)"],
["0xa9059cbb", "transfer(address, uint256)"],
["0x18160ddd", "totalSupply()"],
`
	assert.Equal(t, want, string(m.Render(nil)))
}

func TestGlobEmpty(t *testing.T) {
	ctx := context.Background()

	m := abimap.New()

	err := m.Glob(ctx, filepath.Join(t.TempDir(), "*.json"))
	require.NoError(t, err)
	assert.Empty(t, m.Render(nil))
}

func TestGlobBadFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{`), 0o644)
	require.NoError(t, err)

	err = abimap.New().Glob(ctx, filepath.Join(dir, "*.json"))
	require.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	ctx := context.Background()
	name := filepath.Join(t.TempDir(), "token.json")

	err := os.WriteFile(name, []byte(tokenABI), 0o644)
	require.NoError(t, err)

	list, err := abimap.ExtractFile(ctx, name)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "0xa9059cbb", list[0].Selector.String())
	assert.Equal(t, "transfer(address, uint256)", list[0].Signature)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	m := abimap.New()

	err := m.Add(ctx, "token.json", []byte(tokenABI))
	require.NoError(t, err)

	sel, err := selector.Parse("0x18160ddd")
	require.NoError(t, err)

	matches := m.Lookup(sel)
	require.Len(t, matches, 1)
	assert.Equal(t, "totalSupply()", matches[0].Signature)

	missing, err := selector.Parse("0xdeadbeef")
	require.NoError(t, err)
	assert.Empty(t, m.Lookup(missing))
}
