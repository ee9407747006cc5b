package services

import (
	"context"
	"errors"
	"sync"
)

type fakeReply struct {
	raw string
	err error
}

// fakeGemini answers GenerateStructured from a queue and records requests.
type fakeGemini struct {
	mu       sync.Mutex
	replies  []fakeReply
	requests []StructuredRequest
}

func newFakeGemini(replies ...fakeReply) *fakeGemini {
	return &fakeGemini{replies: replies}
}

func (f *fakeGemini) GenerateStructured(_ context.Context, req StructuredRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if len(f.replies) == 0 {
		return "", errors.New("unexpected call")
	}

	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply.raw, reply.err
}

func (f *fakeGemini) Model() string {
	return "fake-model"
}

func (f *fakeGemini) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
