package mysync

import (
	"sync"
	"testing"
)

func TestMutex(t *testing.T) {
	mu := NewMutex(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v, u := mu.Lock()
				*v++
				u.Unlock()
			}
		}()
	}
	wg.Wait()
	if got := mu.Load(); got != 8000 {
		t.Errorf("Load()=%d, want 8000", got)
	}

	mu.Store(-1)
	v, u := mu.RLock()
	u.RUnlock()
	if v != -1 {
		t.Errorf("RLock()=%d after Store(-1), want -1", v)
	}
}
