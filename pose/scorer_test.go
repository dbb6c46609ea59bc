package pose

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPScorerDecodesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("content type = %q, want image/jpeg", ct)
		}
		_, _ = w.Write([]byte(`{"score": 0.87, "feedback": "raise your left arm"}`))
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL)
	res, err := s.Score(context.Background(), []byte("not-a-real-jpeg"))
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Score != 0.87 || res.Feedback != "raise your left arm" {
		t.Fatalf("result = %+v", res)
	}
}

func TestHTTPScorerRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL)
	if _, err := s.Score(context.Background(), nil); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestStubAlwaysAnswers(t *testing.T) {
	res, err := Stub{}.Score(context.Background(), nil)
	if err != nil {
		t.Fatalf("stub errored: %v", err)
	}
	if res.Feedback == "" {
		t.Fatalf("stub gave no feedback")
	}
}
