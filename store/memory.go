package store

import (
	"context"
	"sync"
)

func NewMemory() *Memory {
	return &Memory{m: map[string]string{}}
}

// Memory — KV в памяти процесса. Для тестов и локального запуска без
// Redis/Postgres; соответствия не переживают рестарт.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

func (s *Memory) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *Memory) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
