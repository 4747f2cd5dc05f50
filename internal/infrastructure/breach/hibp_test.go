package breach

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// sha1("password") = 5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8
const (
	pwnedPassword = "password"
	pwnedPrefix   = "5baa6"
	pwnedSuffix   = "1e4c9b93f3f0682250b6cf8331b7ee68fd8"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nil, zerolog.Nop()), srv
}

func TestCheckStrength_LengthBounds(t *testing.T) {
	client := NewClient("http://unreachable.invalid", time.Second, nil, zerolog.Nop())

	for _, password := range []string{"", "short7!", strings.Repeat("x", 256)} {
		ok, err := client.CheckStrength(context.Background(), password)
		if err != nil {
			t.Fatalf("length check for %d chars should not reach the network: %v", len(password), err)
		}
		if ok {
			t.Fatalf("password of length %d passed the bounds check", len(password))
		}
	}
}

func TestCheckStrength_RejectsBreachedPassword(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/range/"+pwnedPrefix {
			t.Fatalf("unexpected range path %q", r.URL.Path)
		}
		// Real responses carry uppercase suffixes; the match is case-insensitive.
		_, _ = w.Write([]byte("0018A45C4D1DEF81644B54AB7F969B88D65:5\r\n" +
			strings.ToUpper(pwnedSuffix) + ":3730471\r\n" +
			"011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n"))
	})

	ok, err := client.CheckStrength(context.Background(), pwnedPassword)
	if err != nil {
		t.Fatalf("CheckStrength returned error: %v", err)
	}
	if ok {
		t.Fatalf("a breached password passed the strength check")
	}
}

func TestCheckStrength_AcceptsCleanPassword(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0018A45C4D1DEF81644B54AB7F969B88D65:5\r\n"))
	})

	ok, err := client.CheckStrength(context.Background(), "unique enough passphrase")
	if err != nil {
		t.Fatalf("CheckStrength returned error: %v", err)
	}
	if !ok {
		t.Fatalf("a clean password failed the strength check")
	}
}

func TestCheckStrength_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.CheckStrength(context.Background(), "a perfectly fine password"); err == nil {
		t.Fatalf("expected an error when the range API fails")
	}
}

type fakeCache struct {
	store map[string]string
	gets  int
	sets  int
}

func (c *fakeCache) Get(_ context.Context, prefix string) (string, bool, error) {
	c.gets++
	body, ok := c.store[prefix]
	return body, ok, nil
}

func (c *fakeCache) Set(_ context.Context, prefix, body string) error {
	c.sets++
	c.store[prefix] = body
	return nil
}

func TestCheckStrength_UsesRangeCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(strings.ToUpper(pwnedSuffix) + ":3730471\r\n"))
	}))
	defer srv.Close()

	cache := &fakeCache{store: make(map[string]string)}
	client := NewClient(srv.URL, time.Second, cache, zerolog.Nop())

	for i := 0; i < 3; i++ {
		ok, err := client.CheckStrength(context.Background(), pwnedPassword)
		if err != nil {
			t.Fatalf("CheckStrength returned error: %v", err)
		}
		if ok {
			t.Fatalf("breached password passed on attempt %d", i)
		}
	}

	if hits != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", hits)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}
