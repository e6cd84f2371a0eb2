// Package roundid generates short, time-ordered identifiers for rounds so a
// debug log can be followed one round at a time.
package roundid

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of every generated ID: 6 timestamp bytes and 4 random bytes
const Length = 16

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator produces round IDs from a clock and a source of random bytes
type Generator struct {
	clock quartz.Clock
	rand  io.Reader
}

// NewGenerator creates a generator. A nil clock uses the real clock and a nil
// reader uses crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, rand: random}
}

// Next returns a new ID. The millisecond timestamp comes first so IDs sort
// by creation time.
func (g *Generator) Next() string {
	var raw [10]byte

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(g.clock.Now().UnixMilli()))
	copy(raw[:6], ts[2:])

	if _, err := io.ReadFull(g.rand, raw[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	return encoding.EncodeToString(raw[:])
}

// Validate checks that id looks like something Next produced
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
