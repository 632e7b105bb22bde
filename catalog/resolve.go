package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveURL turns a manifest locator into an absolute URL string. Locators
// starting with http:// or https:// are returned unchanged; anything else is
// resolved against base as a relative reference.
func ResolveURL(ref string, base *url.URL) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", ref, err)
	}
	if base == nil {
		return u.String(), nil
	}
	return base.ResolveReference(u).String(), nil
}

// resolveOptional resolves ref when present. A nil ref yields "" and no error.
func resolveOptional(ref *string, base *url.URL) (string, error) {
	if ref == nil {
		return "", nil
	}
	return ResolveURL(*ref, base)
}

func parseBase(field string, value *string) (*url.URL, error) {
	if value == nil {
		return nil, &MissingFieldError{Field: field}
	}
	u, err := url.Parse(*value)
	if err != nil {
		return nil, &MalformedError{Field: field, Err: err}
	}
	return u, nil
}
