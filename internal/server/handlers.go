// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xmldoc"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// DefaultFormat is used when a render request names no format.
const DefaultFormat = "html"

var contentTypes = map[string]string{
	"html":       "text/html; charset=utf-8",
	"markdown":   "text/markdown; charset=utf-8",
	"text":       "text/plain; charset=utf-8",
	"json":       "application/json",
	"yaml":       "application/yaml",
	"jsonschema": "application/schema+json",
	"gotypes":    "text/x-go; charset=utf-8",
	"avro":       "application/json",
	"protobuf":   "text/plain; charset=utf-8",
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format := query.Get("format")
	if format == "" {
		format = DefaultFormat
	}
	translator, err := s.formats.Get(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, APIError{Message: err.Error(), Type: TypeUnknownFormat})
		return
	}

	texts := s.strings.Clone()
	if code := query.Get("lang"); code != "" && !texts.SetLanguage(code) {
		writeError(w, http.StatusBadRequest, APIError{Message: "unsupported language: " + code, Type: TypeUnsupportedLanguage})
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, APIError{Message: err.Error(), Type: TypeTooLarge})
			return
		}
		writeError(w, http.StatusBadRequest, APIError{Message: err.Error(), Type: TypeBadRequest})
		return
	}

	schema, ok := s.parse(w, data, texts)
	if !ok {
		return
	}

	start := time.Now()
	name := query.Get("name")
	if name == "" {
		name = "schema"
	}
	out, err := translator.Translate(translate.NewDocument(name, schema, texts))
	if err != nil {
		s.logger.Error("translation failed", "format", format, "err", err)
		writeError(w, http.StatusInternalServerError, APIError{Message: err.Error(), Type: TypeError})
		return
	}
	s.metrics.renders.WithLabelValues(format).Inc()
	s.metrics.renderSeconds.WithLabelValues(format).Observe(time.Since(start).Seconds())

	contentType, ok := contentTypes[format]
	if !ok {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// parse returns the cached schema for data or parses it, writing the error
// response itself when parsing fails.
func (s *Server) parse(w http.ResponseWriter, data []byte, texts *lang.Service) (*xsd.Schema, bool) {
	sum := sha256.Sum256(data)
	key := texts.Language() + ":" + hex.EncodeToString(sum[:])

	if schema, ok := s.cache.Get(key); ok {
		s.metrics.cacheLookups.WithLabelValues("hit").Inc()
		return schema, true
	}
	s.metrics.cacheLookups.WithLabelValues("miss").Inc()

	schema, err := xsd.ParseBytes(data, xsd.WithStrings(texts), xsd.WithLogger(s.logger.Named("parser")))
	if err != nil {
		var docErr *xmldoc.DocumentError
		switch {
		case errors.As(err, &docErr):
			s.metrics.failures.WithLabelValues("malformed").Inc()
			writeError(w, http.StatusBadRequest, APIError{Message: err.Error(), Type: TypeMalformedXML, Issues: docErr.Issues})
		case errors.Is(err, xsd.ErrNotSchema):
			s.metrics.failures.WithLabelValues("not_schema").Inc()
			writeError(w, http.StatusUnprocessableEntity, APIError{Message: err.Error(), Type: TypeNotSchema})
		default:
			s.metrics.failures.WithLabelValues("other").Inc()
			writeError(w, http.StatusInternalServerError, APIError{Message: err.Error(), Type: TypeError})
		}
		return nil, false
	}
	if err := schema.CheckFinite(); err != nil {
		s.metrics.failures.WithLabelValues("recursive").Inc()
		writeError(w, http.StatusUnprocessableEntity, APIError{Message: err.Error(), Type: TypeRecursiveSchema})
		return nil, false
	}

	s.cache.Add(key, schema)
	return schema, true
}

// FormatInfo describes one output format.
type FormatInfo struct {
	Name          string `json:"name"`
	FileExtension string `json:"fileExtension"`
	ContentType   string `json:"contentType"`
}

func (s *Server) listFormats(w http.ResponseWriter, _ *http.Request) {
	names := s.formats.Available()
	infos := make([]FormatInfo, 0, len(names))
	for _, name := range names {
		t, _ := s.formats.Get(name)
		infos = append(infos, FormatInfo{Name: name, FileExtension: t.FileExtension(), ContentType: contentTypes[name]})
	}
	writeJSON(w, http.StatusOK, infos)
}

// Status is the body of the status endpoint.
type Status struct {
	Status        string   `json:"status"`
	Uptime        string   `json:"uptime"`
	Languages     []string `json:"languages"`
	Formats       []string `json:"formats"`
	CachedSchemas int      `json:"cachedSchemas"`
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Status{
		Status:        "ok",
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		Languages:     s.strings.Available(),
		Formats:       s.formats.Available(),
		CachedSchemas: s.cache.Len(),
	})
}
