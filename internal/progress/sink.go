package progress

import "sync"

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Recorder keeps every event it receives. Used by tests and by the
// --timings summary.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(evt Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Timings sums Elapsed of finished events per stage.
func (r *Recorder) Timings() Timings {
	var t Timings
	for _, ev := range r.Events() {
		if ev.Status == StatusDone || ev.Status == StatusError {
			t.Add(ev.Stage, ev.Elapsed)
		}
	}
	return t
}

// Emit sends evt to sink when one is set.
func Emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
