package usecase

import "sync"

// quoteLocks serializes read-modify-write cycles on one quote within this process. Entries are
// dropped once no goroutine holds or waits for them.
type quoteLocks struct {
	mu    sync.Mutex
	locks map[string]*quoteLock
}

type quoteLock struct {
	sync.Mutex
	refs int
}

func (k *quoteLocks) lock(quoteID string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[string]*quoteLock{}
	}
	l := k.locks[quoteID]
	if l == nil {
		l = &quoteLock{}
		k.locks[quoteID] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, quoteID)
		}
		k.mu.Unlock()
	}
}
