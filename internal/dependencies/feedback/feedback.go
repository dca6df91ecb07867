// Package feedback delivers haptic-style cues to whatever renders a puzzle.
package feedback

import "sync"

// Kind is a feedback cue
type Kind string

const (
	KindLight   Kind = "light"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Sink receives feedback cues. Implementations must not block.
type Sink interface {
	LightImpact()
	Success()
	Error()
}

// Nop discards all feedback
type Nop struct{}

func (Nop) LightImpact() {}
func (Nop) Success()     {}
func (Nop) Error()       {}

// Recorder collects cues so they can be returned to a remote client
type Recorder struct {
	mu    sync.Mutex
	kinds []Kind
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) LightImpact() { r.add(KindLight) }
func (r *Recorder) Success()     { r.add(KindSuccess) }
func (r *Recorder) Error()       { r.add(KindError) }

func (r *Recorder) add(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, k)
}

// Kinds returns the recorded cues without clearing them
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Drain returns the recorded cues and clears the recorder
func (r *Recorder) Drain() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.kinds
	r.kinds = nil
	return out
}

// Multi fans a cue out to several sinks
type Multi []Sink

func (m Multi) LightImpact() {
	for _, s := range m {
		s.LightImpact()
	}
}

func (m Multi) Success() {
	for _, s := range m {
		s.Success()
	}
}

func (m Multi) Error() {
	for _, s := range m {
		s.Error()
	}
}
