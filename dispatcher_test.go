package vterm

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbch/vterm/api"
)

// mockBackend is a no-op api.Backend that records every call made to it, for
// asserting on Dispatcher's signal dispatch without touching a real terminal.
type mockBackend struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockBackend) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockBackend) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *mockBackend) Platform() api.Platform { return api.PlatformUnix }
func (m *mockBackend) Goto(col, row int) error { m.record("Goto"); return nil }
func (m *mockBackend) Up(n int) error           { m.record("Up"); return nil }
func (m *mockBackend) Down(n int) error         { m.record("Down"); return nil }
func (m *mockBackend) Left(n int) error         { m.record("Left"); return nil }
func (m *mockBackend) Right(n int) error        { m.record("Right"); return nil }
func (m *mockBackend) HideCursor() error    { m.record("HideCursor"); return nil }
func (m *mockBackend) ShowCursor() error    { m.record("ShowCursor"); return nil }
func (m *mockBackend) SaveCursor() error    { m.record("SaveCursor"); return nil }
func (m *mockBackend) RestoreCursor() error { m.record("RestoreCursor"); return nil }
func (m *mockBackend) Clear(c api.Clear) error { m.record("Clear"); return nil }
func (m *mockBackend) Size() (int, int, error) { m.record("Size"); return 80, 24, nil }
func (m *mockBackend) Resize(w, h int) error   { m.record("Resize"); return nil }
func (m *mockBackend) EnableAlt() error  { m.record("EnableAlt"); return nil }
func (m *mockBackend) DisableAlt() error { m.record("DisableAlt"); return nil }
func (m *mockBackend) Prints(s string) error { m.record("Prints"); return nil }
func (m *mockBackend) Flush() error          { m.record("Flush"); return nil }
func (m *mockBackend) Raw() (api.ModeSnapshot, error) {
	m.record("Raw")
	return mockSnapshot{}, nil
}
func (m *mockBackend) Cook(api.ModeSnapshot) error { m.record("Cook"); return nil }
func (m *mockBackend) EnableMouse() error  { m.record("EnableMouse"); return nil }
func (m *mockBackend) DisableMouse() error { m.record("DisableMouse"); return nil }
func (m *mockBackend) SetFg(c api.Color) error { m.record("SetFg"); return nil }
func (m *mockBackend) SetBg(c api.Color) error { m.record("SetBg"); return nil }
func (m *mockBackend) SetFx(fx api.Effect) error { m.record("SetFx"); return nil }
func (m *mockBackend) SetStyles(fg, bg api.Color, fx api.Effect) error {
	m.record("SetStyles")
	return nil
}
func (m *mockBackend) ResetStyles() error { m.record("ResetStyles"); return nil }

type mockSnapshot struct{}

func (mockSnapshot) Restore() error { return nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_SignalExecutesAgainstBackend(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	d.Signal(api.Goto(3, 4))
	waitFor(t, func() bool { return backend.callCount("Goto") == 1 })
}

func TestDispatcher_PrintfFlushesAfterWriting(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	d.Signal(api.Printf("hi"))
	waitFor(t, func() bool { return backend.callCount("Flush") == 1 })
	assert.Equal(t, 1, backend.callCount("Prints"), "Printf writes through Prints, then flushes")
}

func TestDispatcher_CloseRestoresTerminalState(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)

	d.Signal(api.Raw())
	waitFor(t, func() bool { return backend.callCount("Raw") == 1 })

	d.Close()

	assert.Equal(t, 1, backend.callCount("Cook"), "Close restores the mode captured by the earlier Raw")
	assert.Equal(t, 1, backend.callCount("ShowCursor"))
	assert.Equal(t, 1, backend.callCount("DisableAlt"))
	assert.Equal(t, 1, backend.callCount("DisableMouse"))
	assert.Equal(t, 1, backend.callCount("ResetStyles"))
}

func TestDispatcher_CloseWithoutPriorRawSkipsCook(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	d.Close()

	assert.Equal(t, 0, backend.callCount("Cook"), "no Raw was ever signaled, so there is no mode to restore")
	assert.Equal(t, 1, backend.callCount("ShowCursor"))
}

func TestDispatcher_SpawnDeliversBroadcastEvent(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	h1 := d.Spawn()
	h2 := d.Spawn()

	d.inputCh <- api.Keyboard(api.Char('x'))

	var ev1, ev2 api.InputEvent
	waitFor(t, func() bool {
		ev, ok := h1.PollAsync()
		if ok {
			ev1 = ev
		}
		return ok
	})
	waitFor(t, func() bool {
		ev, ok := h2.PollAsync()
		if ok {
			ev2 = ev
		}
		return ok
	})

	assert.Equal(t, 'x', ev1.Keyboard.Rune)
	assert.Equal(t, 'x', ev2.Keyboard.Rune)
}

func TestDispatcher_SuspendStopsDelivery(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	h := d.Spawn()
	h.Suspend()
	time.Sleep(30 * time.Millisecond) // let the signal loop apply the suspend

	d.inputCh <- api.Keyboard(api.Char('y'))
	time.Sleep(50 * time.Millisecond)

	_, ok := h.PollAsync()
	assert.False(t, ok, "a suspended handle should not receive events")

	h.Transmit()
	d.inputCh <- api.Keyboard(api.Char('z'))
	waitFor(t, func() bool {
		ev, got := h.PollAsync()
		return got && ev.Keyboard.Rune == 'z'
	})
}

func TestDispatcher_LockGivesExclusiveDelivery(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	h1 := d.Spawn()
	h2 := d.Spawn()

	h1.Lock()
	time.Sleep(30 * time.Millisecond)

	d.inputCh <- api.Keyboard(api.Char('q'))
	waitFor(t, func() bool {
		ev, ok := h1.PollAsync()
		return ok && ev.Keyboard.Rune == 'q'
	})

	_, ok := h2.PollAsync()
	assert.False(t, ok, "a non-owning handle gets nothing while another holds the lock")

	h1.Unlock()
}

func TestDispatcher_StopRemovesHandle(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	h := d.Spawn()
	h.Stop()
	time.Sleep(30 * time.Millisecond)

	_, ok := h.PollSync()
	assert.False(t, ok, "Stop closes the handle's channel")
}

func TestDispatcher_SizePassesThrough(t *testing.T) {
	backend := &mockBackend{}
	d := Init(backend)
	defer d.Close()

	w, h, err := d.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
