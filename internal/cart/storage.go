package cart

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	CookieName    = "topnotch-cart"
	CookieMaxAge  = 30 * 24 * time.Hour
	MaxRecordSize = 4096
)

var (
	ErrNoRecord      = errors.New("no persisted cart record")
	ErrQuotaExceeded = errors.New("cart record exceeds storage quota")
)

// Storage is the substrate a cart record is read from and written to.
type Storage interface {
	// Load returns the raw record or ErrNoRecord when nothing was persisted.
	Load() ([]byte, error)
	Save(data []byte) error
}

// CookieStorage keeps the record in the topnotch-cart cookie of one request/response pair.
type CookieStorage struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookieStorage reads from the request cookies and writes Set-Cookie headers on w.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, secure bool) *CookieStorage {
	return &CookieStorage{r: r, w: w, secure: secure}
}

func (s *CookieStorage) Load() ([]byte, error) {
	c, err := s.r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, ErrNoRecord
	} else if err != nil {
		return nil, err
	}
	raw, err := url.PathUnescape(c.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return []byte(raw), nil
}

func (s *CookieStorage) Save(data []byte) error {
	value := url.PathEscape(string(data))
	if len(value) > MaxRecordSize {
		return fmt.Errorf("%w: %d bytes", ErrQuotaExceeded, len(value))
	}
	s.dropPendingCookie()
	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
	return nil
}

// dropPendingCookie removes a Set-Cookie for the cart written earlier in the same response,
// so that only the latest record is sent.
func (s *CookieStorage) dropPendingCookie() {
	h := s.w.Header()
	prefix := CookieName + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}

// MemoryStorage holds the record in memory. Used where no cookie jar exists.
type MemoryStorage struct {
	data    []byte
	present bool
	// SaveErr, when set, is returned by every Save.
	SaveErr error
	// LoadErr, when set, is returned by every Load.
	LoadErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if !s.present {
		return nil, ErrNoRecord
	}
	return s.data, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if len(data) > MaxRecordSize {
		return fmt.Errorf("%w: %d bytes", ErrQuotaExceeded, len(data))
	}
	s.data = append([]byte(nil), data...)
	s.present = true
	return nil
}

// Raw returns the last saved record.
func (s *MemoryStorage) Raw() ([]byte, bool) {
	return s.data, s.present
}
