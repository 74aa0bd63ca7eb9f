package ingest

import (
	"encoding/base32"
	"encoding/hex"

	"github.com/google/uuid"
)

// KeyGenerator produces the opaque identifiers handed out for newly created
// rows: a short public id and a playback access key.
type KeyGenerator interface {
	ShortID() string
	AccessKey() string
}

// crockford-style alphabet, no padding, lowercase for url friendliness
var shortIDEncoding = base32.NewEncoding("0123456789abcdefghjkmnpqrstvwxyz").WithPadding(base32.NoPadding)

type uuidKeys struct{}

func (uuidKeys) ShortID() string {
	u := uuid.New()
	return shortIDEncoding.EncodeToString(u[:])[:11]
}

func (uuidKeys) AccessKey() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
