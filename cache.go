package carteira

import (
	"log"

	"github.com/dgraph-io/ristretto"
)

// snapshotCache is a process-wide read-through cache of decoded ledger
// snapshots keyed by store path. It replaces the memoized load of the
// original report: a snapshot stays valid until an append or a removal on
// the same path invalidates it.
var snapshotCache = newSnapshotCache()

func newSnapshotCache() *ristretto.Cache {
	// A handful of ledger files at most, the sizing is generous.
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 10,
		MaxCost:     1 << 6,
		BufferItems: 64,
	})
	if err != nil {
		// Only reachable with an invalid static config.
		panic(err)
	}
	return c
}

func cachedSnapshot(path string) (*Ledger, bool) {
	v, ok := snapshotCache.Get(path)
	if !ok {
		return nil, false
	}
	ledger, ok := v.(*Ledger)
	return ledger, ok
}

func storeSnapshot(path string, ledger *Ledger) {
	if !snapshotCache.Set(path, ledger, 1) {
		log.Printf("snapshot cache rejected %q", path)
	}
	snapshotCache.Wait()
}

func invalidateSnapshot(path string) {
	snapshotCache.Del(path)
}
