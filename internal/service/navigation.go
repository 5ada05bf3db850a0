package service

import (
	"context"
	"sync"
)

// Navigator transfers control to a logical route.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigationRecorder remembers requested routes so a transport can hand
// them to the client after the fact.
type NavigationRecorder struct {
	mu    sync.Mutex
	paths []string
}

// Navigate records path.
func (r *NavigationRecorder) Navigate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Last returns the most recent route, or "" when none was requested.
func (r *NavigationRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[len(r.paths)-1]
}

// Paths returns every requested route in order.
func (r *NavigationRecorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}
