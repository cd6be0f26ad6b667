// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// incompressibleTypes are media type prefixes that are already compressed.
var incompressibleTypes = []string{"image/", "video/", "audio/", "application/zip", "application/gzip"}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				utils.WriteMessage(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		// the response is compressed here, handlers below must not do it again
		r.Header.Del("Accept-Encoding")

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.src.Close()
}

// gzipResponseWriter decides at WriteHeader time whether the response is
// worth compressing and takes a writer from the pool only then.
type gzipResponseWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if shouldCompress(statusCode, w.Header()) {
		h := w.Header()
		h.Del("Content-Length")
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")

		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}

	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip stream, if one was started, and recycles the writer.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}

func shouldCompress(statusCode int, h http.Header) bool {
	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified || statusCode < http.StatusOK {
		return false
	}
	if h.Get("Content-Encoding") != "" {
		return false
	}

	contentType := h.Get("Content-Type")
	for _, prefix := range incompressibleTypes {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}
	return true
}
