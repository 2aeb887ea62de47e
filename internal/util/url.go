package util

import (
	"net/url"
	"strings"
)

// SafeRedirectPath returns target when it is a same-origin relative path and
// fallback otherwise. Absolute URLs are rejected outright.
func SafeRedirectPath(target, fallback string) string {
	if target == "" {
		return fallback
	}

	// Header injection
	if strings.ContainsAny(target, "\r\n") {
		return fallback
	}

	// Protocol-relative ("//evil.com") and backslash variants ("/\evil.com")
	if !strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "//") ||
		strings.Contains(target, "\\") {
		return fallback
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
