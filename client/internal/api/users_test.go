package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/types"
)

var creds = types.Credentials{Username: "ben", Password: "hunter2"}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != PathSignup {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("register must not send Authorization")
		}
		var got types.Credentials
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil || got != creds {
			t.Errorf("unexpected body %+v err=%v", got, err)
		}
		// body is ignored on success
		_, _ = w.Write([]byte("whatever"))
	})

	if err := Register(context.Background(), restFor(srv.Server), creds); err != nil {
		t.Fatalf("Register error: %v", err)
	}
}

func TestRegister_NonOKStatus(t *testing.T) {
	t.Parallel()
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusUnauthorized, http.StatusConflict, http.StatusInternalServerError} {
		code := code
		srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})
		err := Register(context.Background(), restFor(srv.Server), creds)
		if !errors.Is(err, sdkerrors.ErrHTTPStatus) {
			t.Fatalf("status %d: expected HTTPStatus, got %v", code, err)
		}
		if got, _ := sdkerrors.StatusCode(err); got != code {
			t.Fatalf("status %d: error carries %d", code, got)
		}
	}
}

// Not parallel: swaps the package-level marshal func.
func TestRegister_EncodeFailed(t *testing.T) {
	orig := marshal
	marshal = func(any) ([]byte, error) { return nil, errors.New("cannot encode") }
	t.Cleanup(func() { marshal = orig })

	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	err := Register(context.Background(), restFor(srv.Server), creds)
	if !errors.Is(err, sdkerrors.ErrEncodeFailed) {
		t.Fatalf("expected EncodeFailed, got %v", err)
	}
	if _, err := Authenticate(context.Background(), restFor(srv.Server), creds); !errors.Is(err, sdkerrors.ErrEncodeFailed) {
		t.Fatalf("expected EncodeFailed from Authenticate, got %v", err)
	}
	if srv.hits.Load() != 0 {
		t.Fatalf("no request expected on encode failure, got %d", srv.hits.Load())
	}
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PathLogin {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"username":"ben","password":"hunter2"}` {
			t.Errorf("unexpected body %s", b)
		}
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	})

	tok, err := Authenticate(context.Background(), restFor(srv.Server), creds)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if tok == nil || tok.Token != "abc" {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestAuthenticate_Failures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"empty body", http.StatusOK, "", sdkerrors.ErrNoData},
		{"malformed json", http.StatusOK, "{bad json", sdkerrors.ErrDecodeFailed},
		{"wrong shape", http.StatusOK, `["a"]`, sdkerrors.ErrDecodeFailed},
		{"missing token field", http.StatusOK, `{}`, sdkerrors.ErrDecodeFailed},
		{"json null", http.StatusOK, `null`, sdkerrors.ErrDecodeFailed},
		{"unauthorized is plain status", http.StatusUnauthorized, "", sdkerrors.ErrHTTPStatus},
		{"server error", http.StatusInternalServerError, "boom", sdkerrors.ErrHTTPStatus},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			})
			tok, err := Authenticate(context.Background(), restFor(srv.Server), creds)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if tok != nil {
				t.Fatalf("no token expected on failure, got %+v", tok)
			}
		})
	}
}

func TestUsers_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	err := Register(ctx, restFor(srv.Server), creds)
	if !errors.Is(err, sdkerrors.ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected Transport(context.Canceled), got %v", err)
	}
	if _, err := Authenticate(ctx, restFor(srv.Server), creds); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled for Authenticate, got %v", err)
	}
	if srv.hits.Load() != 0 {
		t.Fatalf("canceled context must not reach the server")
	}
}

func TestUsers_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := deadRest()
	if err := Register(context.Background(), rc, creds); !errors.Is(err, sdkerrors.ErrTransport) {
		t.Fatalf("expected Transport for Register, got %v", err)
	}
	if _, err := Authenticate(context.Background(), rc, creds); !errors.Is(err, sdkerrors.ErrTransport) {
		t.Fatalf("expected Transport for Authenticate, got %v", err)
	}
}
