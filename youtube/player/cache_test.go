package player

import (
	"sync"
	"testing"
	"time"
)

func TestCacheCommitGroup(t *testing.T) {
	c := NewCache()
	now := time.Now()
	c.Commit(0xdead, "nsig", "sig", "pY", 123, now)

	info := c.Snapshot()
	if info.PlayerID != 0xdead || info.NsigFunctionCode != "nsig" ||
		info.SigFunctionCode != "sig" || info.SigFunctionName != "pY" ||
		info.SignatureTimestamp != 123 {
		t.Fatalf("commit group not applied: %+v", info)
	}
	if info.State != StatePopulated {
		t.Fatalf("state = %v want populated", info.State)
	}
	if !info.LastUpdate.Equal(now) {
		t.Fatalf("last update not set")
	}
}

func TestCacheTouchOnlyRefreshesTimestamp(t *testing.T) {
	c := NewCache()
	c.Commit(1, "n", "s", "f", 2, time.Unix(100, 0))

	c.Touch(time.Unix(200, 0))
	info := c.Snapshot()
	if !info.LastUpdate.Equal(time.Unix(200, 0)) {
		t.Fatalf("touch did not refresh timestamp")
	}
	if info.PlayerID != 1 || info.NsigFunctionCode != "n" {
		t.Fatalf("touch mutated other fields: %+v", info)
	}
}

func TestCacheDelegatedCommitLeavesCodeFields(t *testing.T) {
	c := NewCache()
	c.Commit(1, "n", "s", "f", 2, time.Unix(100, 0))

	c.CommitDelegated(7, 99, time.Unix(200, 0))
	info := c.Snapshot()
	if info.PlayerID != 7 || info.SignatureTimestamp != 99 {
		t.Fatalf("delegated commit not applied: %+v", info)
	}
	if info.NsigFunctionCode != "n" || info.SigFunctionCode != "s" || info.SigFunctionName != "f" {
		t.Fatalf("delegated commit touched code fields: %+v", info)
	}
}

func TestCachePopulatedNeverReverts(t *testing.T) {
	c := NewCache()
	if c.Snapshot().State != StateUnset {
		t.Fatal("new cache should be unset")
	}
	c.CommitDelegated(1, 1, time.Now())
	c.Commit(2, "", "", "", 0, time.Now())
	if c.Snapshot().State != StatePopulated {
		t.Fatal("populated state reverted")
	}
}

// A concurrent reader must never observe a player ID paired with code fields
// committed for a different ID.
func TestCacheSnapshotIsVersionConsistent(t *testing.T) {
	c := NewCache()
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			if i%2 == 0 {
				c.Commit(1, "one", "one", "one", 1, time.Now())
			} else {
				c.Commit(2, "two", "two", "two", 2, time.Now())
			}
		}
	}()

	for i := 0; i < 10000; i++ {
		info := c.Snapshot()
		switch info.PlayerID {
		case 0:
		case 1:
			if info.NsigFunctionCode != "one" || info.SignatureTimestamp != 1 {
				t.Errorf("torn read: %+v", info)
			}
		case 2:
			if info.NsigFunctionCode != "two" || info.SignatureTimestamp != 2 {
				t.Errorf("torn read: %+v", info)
			}
		}
		if t.Failed() {
			break
		}
	}
	close(done)
	wg.Wait()
}
