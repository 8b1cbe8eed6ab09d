package selector

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
	"tlog.app/go/errors"
)

// Selector is the first 4 bytes of Keccak-256 over a canonical
// function signature. It is what contract dispatch routes on.
type Selector [4]byte

func FromSignature(sig string) Selector {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(sig))

	var s Selector
	copy(s[:], h.Sum(nil))

	return s
}

// Parse accepts 8 hex digits with or without a 0x prefix.
func Parse(text string) (s Selector, err error) {
	raw := strings.TrimPrefix(text, "0x")

	if len(raw) != 2*len(s) {
		return s, errors.New("bad selector length: %q", text)
	}

	_, err = hex.Decode(s[:], []byte(raw))
	if err != nil {
		return s, errors.Wrap(err, "decode %q", text)
	}

	return s, nil
}

// Hex is the bare lowercase form without the 0x prefix.
func (s Selector) Hex() string { return hex.EncodeToString(s[:]) }

func (s Selector) String() string { return "0x" + s.Hex() }
