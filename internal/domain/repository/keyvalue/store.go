package keyvalue

import "context"

// Store persists whole-collection JSON payloads under fixed keys. LoadRaw
// returns nil without error when the key was never written.
type Store interface {
	LoadRaw(ctx context.Context, key string) ([]byte, error)
	SaveRaw(ctx context.Context, key string, payload []byte) error
}
