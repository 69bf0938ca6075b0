package interfaces

import "context"

// ICounterRepository allocates monotonically increasing sequence numbers,
// one independent counter per (tenant, name, year). Numbers are never reused.
type ICounterRepository interface {
	Next(ctx context.Context, realmID, name string, year int) (int64, error)
}
