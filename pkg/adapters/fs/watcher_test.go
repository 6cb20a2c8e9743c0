package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/intervals/pkg/worksheet"
)

func nextEvent(t *testing.T, events <-chan worksheet.Event) worksheet.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for event")
		return worksheet.Event{}
	}
}

func TestWatcher_ReportsWorksheetChanges(t *testing.T) {
	root := t.TempDir()
	w := NewWatcher(Config{Root: root, Pattern: "**/*.yaml", Debounce: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx)
	require.NoError(t, err)
	waitForActive(t, w, true)

	// Ignored by pattern.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	path := filepath.Join(root, "drill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exercises: []\n"), 0644))

	e := nextEvent(t, events)
	assert.Equal(t, path, e.Path)
	assert.Contains(t, []worksheet.EventType{worksheet.EventCreate, worksheet.EventModify}, e.Type)

	// Files in directories created after the watch started are reported too.
	sub := filepath.Join(root, "more")
	require.NoError(t, os.Mkdir(sub, 0755))
	time.Sleep(100 * time.Millisecond)
	nested := filepath.Join(sub, "nested.yaml")
	require.NoError(t, os.WriteFile(nested, []byte("exercises: []\n"), 0644))

	e = nextEvent(t, events)
	assert.Equal(t, nested, e.Path)

	require.NoError(t, os.Remove(path))
	e = nextEvent(t, events)
	assert.Equal(t, path, e.Path)
	assert.Equal(t, worksheet.EventDelete, e.Type)

	state := w.State().(WatcherState)
	assert.Equal(t, 3, state.Delivered)
	assert.NotNil(t, state.LastEvent)
	assert.Equal(t, "watcher", w.ComponentType())

	cancel()
	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(6 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var (
		mu  sync.Mutex
		got []worksheet.Event
	)
	record := func(e worksheet.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}

	d.add(worksheet.Event{Type: worksheet.EventCreate, Path: "a.yaml"}, record)
	d.add(worksheet.Event{Type: worksheet.EventModify, Path: "a.yaml"}, record)
	d.add(worksheet.Event{Type: worksheet.EventModify, Path: "b.yaml"}, record)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 10*time.Millisecond)

	d.stopAndWait(time.Second)
	d.add(worksheet.Event{Type: worksheet.EventModify, Path: "c.yaml"}, record)
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	byPath := map[string]worksheet.EventType{}
	for _, e := range got {
		byPath[e.Path] = e.Type
	}
	assert.Equal(t, worksheet.EventCreate, byPath["a.yaml"])
	assert.Equal(t, worksheet.EventModify, byPath["b.yaml"])
}

func TestMerge(t *testing.T) {
	del := worksheet.Event{Type: worksheet.EventDelete, Path: "x"}
	create := worksheet.Event{Type: worksheet.EventCreate, Path: "x"}
	assert.Equal(t, worksheet.EventModify, merge(del, create).Type)
	assert.Equal(t, worksheet.EventDelete, merge(create, del).Type)
}
