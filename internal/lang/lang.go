// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package lang resolves dotted string keys to display strings.
//
// Tables are YAML documents, one per language, named <code>.yaml. The
// default table is loaded when the Service is built; other tables load on
// first use. Lookups never fail loudly: Get returns a sentinel string for
// empty, unknown and ambiguous keys.
package lang

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the fallback language code.
const DefaultLanguage = "en"

// Sentinel strings returned by Get.
const (
	EmptyKeyText     = "[ EMPTY STRING CODE ]"
	InvalidKeyText   = "[ INVALID STRING CODE ]"
	AmbiguousKeyText = "[ AMBIGUOUS STRING CODE ]"
)

var (
	// ErrEmptyKey is returned by Lookup for an empty key.
	ErrEmptyKey = errors.New("empty string key")
	// ErrInvalidKey is returned by Lookup when a key does not resolve.
	ErrInvalidKey = errors.New("invalid string key")
	// ErrAmbiguousKey is returned by Lookup when a key names a group of strings.
	ErrAmbiguousKey = errors.New("ambiguous string key")
	// ErrNoDefault is returned by New when the default table cannot be loaded.
	ErrNoDefault = errors.New("missing default language table")
)

//go:embed tables/*.yaml
var embedded embed.FS

type table map[string]any

// Service looks up display strings in the active language table and falls
// back to the default table.
type Service struct {
	mu       sync.RWMutex
	fsys     fs.FS
	codes    []string // codes[0] is the default language
	matcher  language.Matcher
	tables   map[string]table
	current  string
	fallback string
}

// Option configures a Service.
type Option func(*Service)

// WithFS reads language tables from fsys instead of the embedded tables.
func WithFS(fsys fs.FS) Option {
	return func(s *Service) { s.fsys = fsys }
}

// WithDefault sets the fallback language code.
func WithDefault(code string) Option {
	return func(s *Service) { s.fallback = code }
}

// New builds a Service and loads its default table.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		fallback: DefaultLanguage,
		tables:   make(map[string]table),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fsys == nil {
		sub, err := fs.Sub(embedded, "tables")
		if err != nil {
			return nil, err
		}
		s.fsys = sub
	}

	def, err := loadTable(s.fsys, s.fallback)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrNoDefault, s.fallback, err)
	}
	s.tables[s.fallback] = def
	s.current = s.fallback

	codes, err := discover(s.fsys)
	if err != nil {
		return nil, err
	}
	s.codes = []string{s.fallback}
	for _, code := range codes {
		if code != s.fallback {
			s.codes = append(s.codes, code)
		}
	}

	tags := make([]language.Tag, 0, len(s.codes))
	for _, code := range s.codes {
		tags = append(tags, language.Make(code))
	}
	s.matcher = language.NewMatcher(tags)
	return s, nil
}

// SetLanguage switches the active table to the best match for code.
// It returns false and keeps the current table when nothing matches.
func (s *Service) SetLanguage(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	_, idx, conf := s.matcher.Match(tag)
	if conf == language.No {
		return false
	}
	matched := s.codes[idx]

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[matched]; !ok {
		t, err := loadTable(s.fsys, matched)
		if err != nil {
			return false
		}
		s.tables[matched] = t
	}
	s.current = matched
	return true
}

// Language returns the active language code.
func (s *Service) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Available returns the language codes with a table, default first.
func (s *Service) Available() []string {
	return append([]string(nil), s.codes...)
}

// Clone returns an independent Service sharing the loaded tables, so the
// copy can switch language without affecting s.
func (s *Service) Clone() *Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make(map[string]table, len(s.tables))
	for code, t := range s.tables {
		tables[code] = t
	}
	return &Service{
		fsys:     s.fsys,
		codes:    s.codes,
		matcher:  s.matcher,
		tables:   tables,
		current:  s.current,
		fallback: s.fallback,
	}
}

// Get resolves key and formats it with args. It returns one of the sentinel
// strings instead of an error.
func (s *Service) Get(key string, args ...any) string {
	str, err := s.Lookup(key, args...)
	switch {
	case errors.Is(err, ErrEmptyKey):
		return EmptyKeyText
	case errors.Is(err, ErrAmbiguousKey):
		return AmbiguousKeyText
	case err != nil:
		return InvalidKeyText
	}
	return str
}

// Lookup resolves key in the active table, then in the default table.
func (s *Service) Lookup(key string, args ...any) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	parts := strings.Split(key, ".")

	s.mu.RLock()
	current, fallback := s.tables[s.current], s.tables[s.fallback]
	s.mu.RUnlock()

	value, err := resolve(current, parts)
	if errors.Is(err, ErrInvalidKey) && s.current != s.fallback {
		value, err = resolve(fallback, parts)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, key)
	}
	if len(args) == 0 {
		return value, nil
	}
	return fmt.Sprintf(value, args...), nil
}

func resolve(t table, parts []string) (string, error) {
	var node any = map[string]any(t)
	for _, part := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return "", ErrInvalidKey
		}
		next, ok := m[part]
		if !ok {
			return "", ErrInvalidKey
		}
		node = next
	}
	switch v := node.(type) {
	case map[string]any:
		return "", ErrAmbiguousKey
	case string:
		return v, nil
	case nil:
		return "", ErrInvalidKey
	default:
		return fmt.Sprint(v), nil
	}
}

func loadTable(fsys fs.FS, code string) (table, error) {
	data, err := fs.ReadFile(fsys, code+".yaml")
	if err != nil {
		return nil, err
	}
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("language %q: %w", code, err)
	}
	if t == nil {
		t = table{}
	}
	return t, nil
}

func discover(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		codes = append(codes, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(codes)
	return codes, nil
}
