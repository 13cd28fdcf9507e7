package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"en-US":   "en-US",
		"ar-SA":   "ar-SA",
		"de-DE":   "de-DE",
		" de-DE ": "de-DE",
		"fr-FR":   "en-US",
		"":        "en-US",
	}
	for in, want := range cases {
		if got := NormalizeLanguage(in); got != want {
			t.Fatalf("NormalizeLanguage(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestHTTPRecognizerHappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recognize" {
			t.Errorf("path=%q", r.URL.Path)
		}
		if lang := r.URL.Query().Get("lang"); lang != "de-DE" {
			t.Errorf("lang=%q", lang)
		}
		w.Write([]byte(`{"transcript": " hallo welt "}`))
	}))
	defer server.Close()

	rec := NewHTTPRecognizer(server.URL, "", nil)
	text, err := rec.Recognize(context.Background(), []byte("audio"), "de-DE")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if text != "hallo welt" {
		t.Fatalf("text=%q", text)
	}
}

func TestHTTPRecognizerEmptyTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"transcript": ""}`))
	}))
	defer server.Close()

	rec := NewHTTPRecognizer(server.URL, "", nil)
	if _, err := rec.Recognize(context.Background(), []byte("audio"), "en-US"); !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
}

func TestHTTPRecognizerEmptyAudio(t *testing.T) {
	rec := NewHTTPRecognizer("http://unused", "", nil)
	if _, err := rec.Recognize(context.Background(), nil, "en-US"); !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
}

func TestHTTPRecognizerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	rec := NewHTTPRecognizer(server.URL, "", nil)
	if _, err := rec.Recognize(context.Background(), []byte("audio"), "en-US"); err == nil {
		t.Fatalf("expected error on 500")
	}
}
