package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel is a no-op tracer for tests. It remembers the errors traced through
// its scopes so tests can assert that failures were reported.
type Otel struct {
	mu     sync.Mutex
	Traced []error
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &scope{owner: o}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() *Otel {
	return &Otel{}
}

type scope struct {
	owner *Otel
}

func (s *scope) End() {}

func (s *scope) TraceError(err error) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.owner.Traced = append(s.owner.Traced, err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}
