package types

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// String returns the canonical 8-4-4-4-12 lowercase form of g.
func (g GUID) String() string {
	var buf [36]byte
	hex.Encode(buf[0:8], g[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], g[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], g[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], g[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], g[10:])
	return string(buf[:])
}

// ParseGUID parses the canonical 8-4-4-4-12 form of a GUID.
func ParseGUID(s string) (GUID, error) {
	var g GUID
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return g, errors.Errorf("invalid guid %q", s)
	}

	src := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:]
	if _, err := hex.Decode(g[:], []byte(src)); err != nil {
		return g, errors.Wrapf(err, "invalid guid %q", s)
	}

	return g, nil
}
