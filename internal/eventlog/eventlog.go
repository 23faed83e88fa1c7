// Package eventlog records what plant controls decide. Logging is fire and
// forget: sinks never report errors back to the control loops.
package eventlog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Kind classifies an event.
type Kind string

const (
	ChangeInTarget     Kind = "change_in_target"
	ChangeInPolicy     Kind = "change_in_policy"
	LostWorker         Kind = "lost_worker"
	HireAttempt        Kind = "hire_attempt"
	NoOffer            Kind = "no_offer"
	MaximizerWaiting   Kind = "maximizer_waiting"
	InvariantViolation Kind = "invariant_violation"
)

// Event is one logged decision.
type Event struct {
	Day     int
	Source  string
	Kind    Kind
	Message string
	Fields  map[string]any
}

// String renders fields in key order so output is stable.
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "day=%d %s %s: %s", e.Day, e.Source, e.Kind, e.Message)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// Logger accepts events.
type Logger interface {
	Log(e Event)
}

type nop struct{}

func (nop) Log(Event) {}

// Nop discards every event.
var Nop Logger = nop{}

// Multi fans events out to several loggers.
type Multi []Logger

func (m Multi) Log(e Event) {
	for _, l := range m {
		l.Log(e)
	}
}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Log(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything logged so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfKind filters the recorded events.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}
