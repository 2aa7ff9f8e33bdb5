package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecetuna/finfeed/internal/domain"
)

var ctx = context.Background()

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	base, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	return New(base, server.Client())
}

func TestFeed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feed" {
			t.Errorf("expected path /api/feed, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"user":"ayse","avatar":"🦊","content":"merhaba","timestamp":"2025-01-10 09:30","comment_count":2,"rating_avg":4.5,"rating_count":8}]`))
	}))

	posts, err := client.Feed(ctx)
	if err != nil {
		t.Fatal(err)
	}

	expected := []domain.Post{{
		ID: 1, User: "ayse", Avatar: "🦊", Content: "merhaba",
		Timestamp: "2025-01-10 09:30", CommentCount: 2,
		RatingAvg: 4.5, RatingCount: 8,
	}}
	if diff := cmp.Diff(posts, expected); diff != "" {
		t.Error(diff)
	}
}

func TestSessionCookieAttached(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			t.Error("session cookie missing")
		} else if cookie.Value != "tok123" {
			t.Errorf("expected cookie tok123, got %s", cookie.Value)
		}
		w.Write([]byte(`{"success":true}`))
	}))

	if err := client.WithSession("tok123").Logout(ctx); err != nil {
		t.Error(err)
	}
}

func TestUnauthorizedIsAPayload(t *testing.T) {
	// 401 and 404 bodies are parsed, not treated as transport failures.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Giriş yapmalısınız"}`))
	}))

	err := client.CreatePost(ctx, "selam")
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected a RemoteError, got %v", err)
	}
	if remote.Message != "Giriş yapmalısınız" {
		t.Errorf("unexpected message %q", remote.Message)
	}
}

func TestServerErrorRejects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.Feed(ctx)
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if IsRemote(err) {
		t.Error("a 500 must be a transport failure, not a domain error")
	}
}

func TestLoginCapturesSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "fresh"})
		w.Write([]byte(`{"success":true}`))
	}))

	token, err := client.Login(ctx, "", "ayse", "parola")
	if err != nil {
		t.Fatal(err)
	}
	if token != "fresh" {
		t.Errorf("expected captured token fresh, got %q", token)
	}
}

func TestLoginDomainError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Kullanıcı adı veya şifre hatalı"}`))
	}))

	_, err := client.Login(ctx, "", "ayse", "yanlis")
	if !IsRemote(err) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestCandlesticksQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/candlestick/bitcoin" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if p := r.URL.Query().Get("period"); p != domain.PeriodWeekly {
			t.Errorf("expected period weekly, got %q", p)
		}
		w.Write([]byte(`{"symbol":"bitcoin","period":"weekly","data":[{"time":"2025-01-06","open":1,"high":2,"low":0.5,"close":1.5,"volume":100}]}`))
	}))

	series, err := client.Candlesticks(ctx, "bitcoin", domain.PeriodWeekly)
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Data) != 1 || series.Data[0].Close != 1.5 {
		t.Errorf("unexpected series %+v", series)
	}
}
