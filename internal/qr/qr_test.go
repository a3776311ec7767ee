package qr

import (
	"bytes"
	"errors"
	"testing"
)

func TestPublishedURL(t *testing.T) {
	tests := []struct {
		domain, slug, want string
	}{
		{"https://menu.example.com", "junk-house", "https://menu.example.com/junk-house/index.html"},
		{"https://menu.example.com/", "junk-house", "https://menu.example.com/junk-house/index.html"},
	}
	for _, tt := range tests {
		if got := PublishedURL(tt.domain, tt.slug); got != tt.want {
			t.Errorf("PublishedURL(%q, %q) = %q, want %q", tt.domain, tt.slug, got, tt.want)
		}
	}
}

func TestPNG(t *testing.T) {
	png, err := PNG("https://menu.example.com/junk-house/index.html", 256)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestPNGNoTarget(t *testing.T) {
	if _, err := PNG("", 256); !errors.Is(err, ErrNoTarget) {
		t.Errorf("err = %v, want ErrNoTarget", err)
	}
}
