package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-intelligence-go/internal/types"
)

func TestInsertIfAbsentNeverOverwrites(t *testing.T) {
	s := NewMemory()
	require.True(t, s.InsertIfAbsent("c1", types.CallRecord{CallID: "c1", Transcript: "first"}))
	require.False(t, s.InsertIfAbsent("c1", types.CallRecord{CallID: "c1", Transcript: "second"}))

	rec, ok := s.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "first", rec.Transcript)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestFailuresAreSeparateFromRecords(t *testing.T) {
	s := NewMemory()
	s.MarkFailed("c1", "transcription failed")
	reason, ok := s.Failure("c1")
	require.True(t, ok)
	assert.Equal(t, "transcription failed", reason)

	_, ok = s.Get("c1")
	assert.False(t, ok)
	assert.False(t, s.InsertIfAbsent("c1", types.CallRecord{CallID: "c1"}))

	require.True(t, s.InsertIfAbsent("c2", types.CallRecord{CallID: "c2"}))
	s.MarkFailed("c2", "late")
	_, ok = s.Failure("c2")
	assert.False(t, ok)
}

func TestListSorted(t *testing.T) {
	s := NewMemory()
	for _, id := range []string{"b", "c", "a"} {
		s.InsertIfAbsent(id, types.CallRecord{CallID: id})
	}
	var ids []string
	for _, r := range s.List() {
		ids = append(ids, r.CallID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestConcurrentWritersAndReaders(t *testing.T) {
	s := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("call-%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.InsertIfAbsent(id, types.CallRecord{CallID: id})
		}()
		go func() {
			defer wg.Done()
			if rec, ok := s.Get(id); ok {
				assert.Equal(t, id, rec.CallID)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, s.List(), 50)
}
