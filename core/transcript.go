package orchestration

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// transcript is the ordered conversation log. It is append-only apart from
// the single filtering rule around verification challenges: at most one
// pending challenge entry exists at a time, and it is removed before the
// entry that settles it is appended.
type transcript struct {
	mu sync.RWMutex

	entries []Entry
}

func (t *transcript) append(entry Entry) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	t.entries = append(t.entries, entry)
	return entry
}

// removePendingChallenge filters out every entry still marked as requiring
// verification and returns the IDs of the removed entries.
func (t *transcript) removePendingChallenge() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var removed []string
	kept := t.entries[:0]
	for _, entry := range t.entries {
		if entry.RequiresVerification {
			removed = append(removed, entry.ID)
			continue
		}
		kept = append(kept, entry)
	}
	t.entries = kept
	return removed
}

func (t *transcript) hasPendingChallenge() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, entry := range t.entries {
		if entry.RequiresVerification {
			return true
		}
	}
	return false
}

func (t *transcript) entryByID(id string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, entry := range t.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// Entries returns a point-in-time copy of the transcript.
func (t *transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

func (t *transcript) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

func (t *transcript) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil
}
