// Package qr generates scannable codes pointing at a published menu.
package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrNoTarget is returned when neither a URL nor a domain+slug is given.
var ErrNoTarget = errors.New("no QR target: provide a URL or a domain and slug")

// PublishedURL builds the canonical published location of a menu from the
// configured domain and the menu's slug.
func PublishedURL(domain, slug string) string {
	return strings.TrimRight(domain, "/") + "/" + slug + "/index.html"
}

// PNG encodes target as a QR code PNG with the given pixel size.
func PNG(target string, size int) ([]byte, error) {
	if target == "" {
		return nil, ErrNoTarget
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}
	return png, nil
}
