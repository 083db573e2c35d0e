package ids

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// Entity ids are 24-character hex strings: 4 bytes of unix time followed by
// 8 random bytes. Keeps the id format the existing clients already validate.
var pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func New() string {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(buf[4:]); err != nil {
		// crypto/rand does not fail on any supported platform
		panic(err)
	}
	return hex.EncodeToString(buf[:])
}

// Valid reports whether id matches the 24-hex format. Callers must check this
// before any database lookup so malformed ids never reach the store.
func Valid(id string) bool {
	return pattern.MatchString(id)
}
