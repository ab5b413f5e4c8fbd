package vterm

import "github.com/climbch/vterm/api"

// emitter is one registered subscriber's entry in the Dispatcher's roster:
// the channel its events are pushed onto, plus the suspend/running flags the
// signal thread flips in response to EventHandle.Suspend/Transmit/Stop.
type emitter struct {
	eventCh   chan api.InputEvent
	isSuspend bool
	isRunning bool
}
