package api

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/types"
)

func TestListAnimals_Success(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != PathAnimals {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("unexpected Authorization %q", got)
		}
		_, _ = w.Write([]byte(`["Lion","Tiger","Bear"]`))
	})

	names, err := ListAnimals(context.Background(), restFor(srv.Server), types.AuthToken{Token: "abc"})
	if err != nil {
		t.Fatalf("ListAnimals error: %v", err)
	}
	if want := []string{"Lion", "Tiger", "Bear"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
}

// Order and duplicates come back exactly as sent.
func TestListAnimals_Verbatim(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["Zebra","Aardvark","Zebra"]`))
	})
	names, err := ListAnimals(context.Background(), restFor(srv.Server), types.AuthToken{Token: "t"})
	if err != nil {
		t.Fatalf("ListAnimals error: %v", err)
	}
	if want := []string{"Zebra", "Aardvark", "Zebra"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
}

func TestListAnimals_EmptyArray(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	names, err := ListAnimals(context.Background(), restFor(srv.Server), types.AuthToken{Token: "t"})
	if err != nil || names == nil || len(names) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", names, err)
	}
}

func TestListAnimals_NoTokenSendsNothing(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	_, err := ListAnimals(context.Background(), restFor(srv.Server), types.AuthToken{})
	if !errors.Is(err, sdkerrors.ErrNoAuth) {
		t.Fatalf("expected NoAuth, got %v", err)
	}
	if n := srv.hits.Load(); n != 0 {
		t.Fatalf("expected zero requests, got %d", n)
	}
}

func TestListAnimals_Failures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"401 empty body", http.StatusUnauthorized, "", sdkerrors.ErrUnauthorized},
		{"401 json body", http.StatusUnauthorized, `["Lion"]`, sdkerrors.ErrUnauthorized},
		{"403", http.StatusForbidden, "", sdkerrors.ErrHTTPStatus},
		{"500", http.StatusInternalServerError, "oops", sdkerrors.ErrHTTPStatus},
		{"empty body", http.StatusOK, "", sdkerrors.ErrNoData},
		{"malformed", http.StatusOK, `["Lion",`, sdkerrors.ErrDecodeFailed},
		{"not strings", http.StatusOK, `[1,2,3]`, sdkerrors.ErrDecodeFailed},
		{"object", http.StatusOK, `{"animals":["Lion"]}`, sdkerrors.ErrDecodeFailed},
		{"null", http.StatusOK, `null`, sdkerrors.ErrDecodeFailed},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			})
			_, err := ListAnimals(context.Background(), restFor(srv.Server), types.AuthToken{Token: "abc"})
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestListAnimals_TransportError(t *testing.T) {
	t.Parallel()
	_, err := ListAnimals(context.Background(), deadRest(), types.AuthToken{Token: "abc"})
	if !errors.Is(err, sdkerrors.ErrTransport) {
		t.Fatalf("expected Transport, got %v", err)
	}
}
