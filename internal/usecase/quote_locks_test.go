package usecase

import (
	"sync"
	"testing"
)

func TestQuoteLocks(t *testing.T) {
	t.Run("serializes the same quote", func(t *testing.T) {
		var locks quoteLocks
		var wg sync.WaitGroup
		counter := 0
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.lock("q-1")
				defer unlock()
				v := counter
				counter = v + 1
			}()
		}
		wg.Wait()
		if counter != 50 {
			t.Fatalf("expected 50, got %d", counter)
		}
		if len(locks.locks) != 0 {
			t.Fatalf("expected released entries to be dropped, got %d", len(locks.locks))
		}
	})

	t.Run("different quotes do not block each other", func(t *testing.T) {
		var locks quoteLocks
		unlockA := locks.lock("q-a")
		done := make(chan struct{})
		go func() {
			unlock := locks.lock("q-b")
			unlock()
			close(done)
		}()
		<-done
		unlockA()
	})
}
