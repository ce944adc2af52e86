// Package localstore is the client's durable key/value file, the browser
// localStorage equivalent. One JSON object on disk, rewritten atomically.
package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const TokenKey = "auth_token"

// Token 实现 api.TokenSource。
func (s *Store) Token() string { return s.Get(TokenKey) }

type Store struct {
	mu   sync.Mutex
	path string
}

func Open(path string) *Store { return &Store{path: path} }

// Get returns "" for a missing key or a missing file.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return ""
	}
	var v string
	_ = json.Unmarshal(m[key], &v)
	return v
}

func (s *Store) Set(key, value string) error {
	return s.write(key, func() (json.RawMessage, error) { return json.Marshal(value) })
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.flush(m)
}

// GetJSON decodes the value stored under key into out.
func (s *Store) GetJSON(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return err
	}
	raw, ok := m[key]
	if !ok {
		return os.ErrNotExist
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) SetJSON(key string, v any) error {
	return s.write(key, func() (json.RawMessage, error) { return json.Marshal(v) })
}

func (s *Store) write(key string, enc func() (json.RawMessage, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return err
	}
	raw, err := enc()
	if err != nil {
		return err
	}
	m[key] = raw
	return s.flush(m)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			// 文件损坏时从空状态重来，而不是让客户端卡死
			return map[string]json.RawMessage{}, nil
		}
	}
	return m, nil
}

// flush 先写临时文件再 rename，避免半截文件
func (s *Store) flush(m map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".quickbite-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
