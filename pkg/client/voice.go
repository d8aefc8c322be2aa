package client

import (
	"context"
	"math/rand/v2"
)

// Transcript is what a voice command produced, with the language it was spoken in.
type Transcript struct {
	Text     string
	Language string
}

type Transcriber interface {
	Transcribe(ctx context.Context) (Transcript, error)
}

// MockPhrases are the canned commands the mock transcriber picks from.
var MockPhrases = []Transcript{
	{Text: "Mala udya kaam pahije", Language: "mr"},
	{Text: "Mujhe plumbing ka kaam chahiye", Language: "hi"},
	{Text: "Show me electrical jobs", Language: "en"},
}

// MockTranscriber stands in for speech recognition by returning a random phrase.
type MockTranscriber struct {
	phrases []Transcript
	pick    func(n int) int
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{phrases: MockPhrases, pick: rand.IntN}
}

// NewSeededMockTranscriber returns a transcriber with a reproducible sequence.
func NewSeededMockTranscriber(seed uint64) *MockTranscriber {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &MockTranscriber{phrases: MockPhrases, pick: r.IntN}
}

func (m *MockTranscriber) Transcribe(ctx context.Context) (Transcript, error) {
	if err := ctx.Err(); err != nil {
		return Transcript{}, err
	}
	return m.phrases[m.pick(len(m.phrases))], nil
}
