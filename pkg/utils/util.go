package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenHashID encodes a numeric id into a short non-enumerable public id.
// Used for image URLs so object ids cannot be walked.
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

// ParseHashID reverses GenHashID. Returns 0 when the input does not decode.
func ParseHashID(salt string, hash string) int64 {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeInt64WithError(hash)
	if err != nil || len(ids) == 0 {
		return 0
	}
	return ids[0]
}
