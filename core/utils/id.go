package utils

import (
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateID returns a short opaque identifier suitable for share links.
func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 10)
	if err != nil {
		return ""
	}
	return id
}

// ShareSlug turns an event name into a URL-safe slug for the share link.
// Falls back to "event" for names with no usable characters.
func ShareSlug(name string) string {
	s := slug.Make(name)
	if s == "" {
		return "event"
	}
	return s
}
