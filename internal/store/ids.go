package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// NewID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, plenty for
// documents with at most a few hundred entities. Prefixes keep ids
// readable: bag-xxx, cat-xxx, item-xxx, stage-xxx, task-xxx.
func NewID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere too; fall
		// back to a uuid-derived suffix rather than erroring every caller.
		return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}

// NewDocumentID returns the uuid used for PackingList meta identity.
func NewDocumentID() string {
	return uuid.NewString()
}
