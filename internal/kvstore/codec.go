package kvstore

import "github.com/golang/snappy"

// Collection snapshots are JSON arrays that compress well; values are
// snappy-framed before they reach the backend.

func encodeValue(raw []byte) []byte {
	return snappy.Encode(nil, raw)
}

func decodeValue(stored []byte) ([]byte, error) {
	if stored == nil {
		return nil, nil
	}
	return snappy.Decode(nil, stored)
}
