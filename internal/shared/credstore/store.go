// Package credstore keeps the access key pair in a line-oriented KEY=VALUE
// file. Keys it does not know about are carried through untouched, and lines
// without "=" are written back as they were read. Line endings are
// normalised to "\n" on Save.
package credstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"s3-cloud/internal/shared/apperr"
)

const (
	DefaultPath = ".env"

	AccessKey = "ACCESS_KEY"
	SecretKey = "SECRET_KEY"
)

type Credentials struct {
	AccessKey string
	SecretKey string
}

type Store struct {
	path   string
	keys   []string
	values map[string]string
	// keys read from lines without "=" and not set since
	bare   map[string]bool
}

// Load reads the file at path, creating it with empty credentials first if
// it does not exist.
func Load(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := create(path); err != nil {
			return nil, apperr.IO("failed to create config file", err)
		}
	} else if err != nil {
		return nil, apperr.IO("failed to stat config file", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.IO("failed to read config file", err)
	}

	s := &Store{path: path, values: make(map[string]string), bare: make(map[string]bool)}
	s.parse(string(data))
	return s, nil
}

func create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "%s=\n%s=\n", AccessKey, SecretKey); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) parse(contents string) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		s.Set(key, value)
		if !found {
			s.bare[key] = true
		}
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set changes the in-memory value only; call Save to persist it.
func (s *Store) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	delete(s.bare, key)
	s.values[key] = value
}

// Keys returns the keys in the order they were first seen.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Save overwrites the file with every entry as a KEY=VALUE line.
func (s *Store) Save() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return apperr.IO("failed to open config file", err)
	}

	w := bufio.NewWriter(f)
	for _, key := range s.Keys() {
		if s.bare[key] {
			fmt.Fprintf(w, "%s\n", key)
			continue
		}
		fmt.Fprintf(w, "%s=%s\n", key, s.values[key])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return apperr.IO("failed to write config file", err)
	}
	if err := f.Close(); err != nil {
		return apperr.IO("failed to close config file", err)
	}
	return nil
}

// Credentials resolves the key pair. A non-empty variable of the same name
// returned by lookup wins over the file; lookup may be nil.
func (s *Store) Credentials(lookup func(string) (string, bool)) (Credentials, error) {
	resolve := func(key string) (string, error) {
		if lookup != nil {
			if v, ok := lookup(key); ok && v != "" {
				return v, nil
			}
		}
		if v, ok := s.values[key]; ok && v != "" {
			return v, nil
		}
		flag := "--access-key"
		if key == SecretKey {
			flag = "--secret-key"
		}
		return "", apperr.Config("%s is not set in %s; run: s3-cloud config %s <KEY>", key, s.path, flag)
	}

	access, err := resolve(AccessKey)
	if err != nil {
		return Credentials{}, err
	}
	secret, err := resolve(SecretKey)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{AccessKey: access, SecretKey: secret}, nil
}
