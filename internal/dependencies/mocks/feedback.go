package mocks

import (
	"github.com/mcoot/wordpuzzles/internal/dependencies/feedback"
)

// MockFeedback counts feedback cues for assertions
type MockFeedback struct {
	Lights    int
	Successes int
	Errors    int
	Sequence  []feedback.Kind
}

// Ensure MockFeedback implements Sink
var _ feedback.Sink = (*MockFeedback)(nil)

// NewMockFeedback creates a new MockFeedback
func NewMockFeedback() *MockFeedback {
	return &MockFeedback{}
}

func (f *MockFeedback) LightImpact() {
	f.Lights++
	f.Sequence = append(f.Sequence, feedback.KindLight)
}

func (f *MockFeedback) Success() {
	f.Successes++
	f.Sequence = append(f.Sequence, feedback.KindSuccess)
}

func (f *MockFeedback) Error() {
	f.Errors++
	f.Sequence = append(f.Sequence, feedback.KindError)
}
