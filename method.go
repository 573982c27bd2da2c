package kotori

import (
	"fmt"
	"net/http"
)

// Method is one of the HTTP methods a Table can route.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// Methods lists every routable method.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// Valid reports whether m is a routable method.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	}
	return false
}

func (m Method) String() string { return string(m) }

// ParseMethod converts an uppercase method name into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}

// encodeKey builds the route key stored in the trie: the method name
// followed by the path, which always starts with '/'.
func encodeKey(method Method, path string) string {
	if path != "" && path[0] == '/' {
		return string(method) + path
	}
	return string(method) + "/" + path
}
