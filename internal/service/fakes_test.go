package service

import (
	"context"
	"errors"
	"sync"

	"github.com/spec-kit/session-toolbar/internal/auth"
	"github.com/spec-kit/session-toolbar/internal/storage"
)

// journal records collaborator calls across fakes so ordering can be asserted.
type journal struct {
	mu    sync.Mutex
	calls []string
}

func (j *journal) add(call string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, call)
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.calls...)
}

type journalStore struct {
	*storage.MemoryStore
	log       *journal
	getErr    error
	removeErr error
}

func newJournalStore(log *journal) *journalStore {
	return &journalStore{MemoryStore: storage.NewMemoryStore(), log: log}
}

func (s *journalStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.log.add("get:" + key)
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *journalStore) Remove(ctx context.Context, key string) error {
	s.log.add("remove:" + key)
	if s.removeErr != nil {
		return s.removeErr
	}
	return s.MemoryStore.Remove(ctx, key)
}

type journalNavigator struct {
	log *journal
}

func (n journalNavigator) Navigate(_ context.Context, path string) {
	n.log.add("navigate:" + path)
}

type countingDecoder struct {
	calls int
	inner *auth.TokenDecoder
}

func (d *countingDecoder) Decode(raw string) (*auth.Claims, error) {
	d.calls++
	return d.inner.Decode(raw)
}

type recordingLocale struct {
	codes []string
}

func (l *recordingLocale) ChangeLanguage(code string) {
	l.codes = append(l.codes, code)
}

var errStoreDown = errors.New("store down")
