package threading

// Store is the boundary to an externally-owned key/value configuration
// object, used to stash a shared Pool where unrelated parts of a larger
// system can find it without a process-wide singleton. The concrete type and
// its lifecycle belong to the surrounding application; anything with
// viper-shaped Set/Get works.
type Store interface {
	Set(key string, value any)
	Get(key string) any
}

// PoolKey is the well-known key under which AttachPool stores a pool.
const PoolKey = "threading.pool"

// AttachPool stores p in s under PoolKey. A nil store or pool is ignored.
func AttachPool(s Store, p *Pool) {
	if s == nil || p == nil {
		return
	}
	s.Set(PoolKey, p)
}

// PoolFrom fetches the pool attached to s, or nil if the store is nil, no
// pool was attached, or the stored value has been clobbered with something
// else. Absence is a normal result the caller must handle.
func PoolFrom(s Store) *Pool {
	if s == nil {
		return nil
	}
	p, _ := s.Get(PoolKey).(*Pool)
	return p
}
