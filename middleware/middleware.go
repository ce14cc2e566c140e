package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gobd/keycase"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/segmentio/encoding/json"
)

// DefaultMaxBodyBytes is the size cap for bodies that get rewritten.
// Larger bodies pass through untouched.
const DefaultMaxBodyBytes = 10 << 20

// Options configures [New].
type Options struct {
	// KeyFunc rewrites each parameter key. Defaults to [keycase.ToSnakeCase].
	KeyFunc keycase.KeyFunc

	// MaxBodyBytes caps the bodies that get rewritten; anything larger is
	// passed through untouched. Defaults to [DefaultMaxBodyBytes].
	MaxBodyBytes int64

	// ContentTypes lists the media types whose bodies are rewritten.
	// Defaults to "application/json".
	ContentTypes []string
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MaxBodyBytes, validation.Min(int64(0))),
		validation.Field(&o.ContentTypes, validation.Each(validation.Required)),
	)
}

// SnakeCaseParams converts every inbound request's query string keys and
// JSON body keys to snake_case before downstream handling, with default
// [Options].
func SnakeCaseParams(next http.Handler) http.Handler {
	return New(Options{})(next)
}

// New returns middleware that rewrites each inbound request's parameter
// keys with opts.KeyFunc. The query string is always rewritten; the body
// only when its Content-Type matches opts.ContentTypes.
func New(opts Options) func(http.Handler) http.Handler {
	if opts.KeyFunc == nil {
		opts.KeyFunc = keycase.ToSnakeCase
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if len(opts.ContentTypes) == 0 {
		opts.ContentTypes = []string{"application/json"}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rewriteQuery(r, opts.KeyFunc)
			rewriteBody(r, opts)
			next.ServeHTTP(w, r)
		})
	}
}

func rewriteQuery(r *http.Request, fn keycase.KeyFunc) {
	if r.URL == nil || r.URL.RawQuery == "" {
		return
	}
	q, ok := keycase.ConvertKeys(r.URL.Query(), fn).(url.Values)
	if !ok {
		return
	}
	r.URL.RawQuery = q.Encode()
}

func rewriteBody(r *http.Request, opts Options) {
	if r.Body == nil || r.Body == http.NoBody {
		return
	}
	if !matchesContentType(r.Header.Get("Content-Type"), opts.ContentTypes) {
		return
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, opts.MaxBodyBytes+1))
	if err != nil || int64(len(buf)) > opts.MaxBodyBytes {
		restoreBody(r, buf)
		return
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		restoreBody(r, buf)
		return
	}

	out, err := json.Marshal(keycase.ConvertKeys(data, opts.KeyFunc))
	if err != nil {
		restoreBody(r, buf)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(out))
	r.ContentLength = int64(len(out))
	r.Header.Set("Content-Length", strconv.Itoa(len(out)))
}

// restoreBody puts the consumed bytes back in front of whatever is left of
// the original body so downstream sees the request as sent.
func restoreBody(r *http.Request, buf []byte) {
	rest := r.Body
	r.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(buf), rest),
		Closer: rest,
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

func matchesContentType(header string, types []string) bool {
	mt, _, _ := strings.Cut(header, ";")
	mt = strings.ToLower(strings.TrimSpace(mt))
	for _, t := range types {
		if mt == strings.ToLower(t) {
			return true
		}
	}
	return false
}
