package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-book-share/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Responses are compressed by chi's Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteMessage(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		r.Body = &pooledGZipBody{Reader: gzipReader, source: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledGZipBody struct {
	*gzip.Reader
	source io.ReadCloser
	once   sync.Once
}

func (b *pooledGZipBody) Close() error {
	var err error
	b.once.Do(func() {
		b.Reader.Close()
		gzipReaderPool.Put(b.Reader)
		err = b.source.Close()
	})
	return err
}
