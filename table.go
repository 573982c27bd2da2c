package kotori

import (
	"fmt"
	"strings"
)

// Table maps (method, path) pairs to handlers through a compressed prefix
// trie keyed on "<METHOD><PATH>".
//
// A Table is not safe for concurrent registration and dispatch; register
// routes during startup or use SyncTable.
type Table struct {
	state      *tableState
	middleware []Middleware
}

type tableState struct {
	root               *node
	panicOnRegisterErr bool
}

type Option func(*Table)

// WithPanicOnRegisterError makes Handle and its aliases panic instead of
// returning an error.
func WithPanicOnRegisterError() Option {
	return func(t *Table) {
		t.state.panicOnRegisterErr = true
	}
}

// New creates an empty Table.
func New(opts ...Option) *Table {
	t := &Table{
		state: &tableState{root: newRoot()},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Handle registers h for method and path. A path without a leading '/' is
// treated as if it had one.
//
// Registering an empty path fails with ErrInvalidPath, and registering the
// same method and path twice fails with ErrDuplicateRoute.
func (t *Table) Handle(method Method, path string, h Handler) error {
	if path == "" {
		return t.registerError(fmt.Errorf("%w: empty path for %s", ErrInvalidPath, method))
	}
	if !method.Valid() {
		return t.registerError(fmt.Errorf("%w: %q", ErrInvalidMethod, string(method)))
	}
	if h == nil {
		return t.registerError(ErrNilHandler)
	}
	h = chainMiddlewares(h, t.middleware)
	if err := t.state.root.insert(encodeKey(method, path), h); err != nil {
		return t.registerError(err)
	}
	return nil
}

// HandleFunc is like Handle but accepts a HandlerFunc.
func (t *Table) HandleFunc(method Method, path string, h HandlerFunc) error {
	if h == nil {
		return t.Handle(method, path, nil)
	}
	return t.Handle(method, path, h)
}

// MustHandle is like Handle but panics on error.
func (t *Table) MustHandle(method Method, path string, h Handler) {
	if err := t.Handle(method, path, h); err != nil {
		panic(err)
	}
}

// Get registers a GET route.
func (t *Table) Get(path string, h HandlerFunc) error {
	return t.HandleFunc(MethodGet, path, h)
}

// Post registers a POST route.
func (t *Table) Post(path string, h HandlerFunc) error {
	return t.HandleFunc(MethodPost, path, h)
}

// Put registers a PUT route.
func (t *Table) Put(path string, h HandlerFunc) error {
	return t.HandleFunc(MethodPut, path, h)
}

// Patch registers a PATCH route.
func (t *Table) Patch(path string, h HandlerFunc) error {
	return t.HandleFunc(MethodPatch, path, h)
}

// Delete registers a DELETE route.
func (t *Table) Delete(path string, h HandlerFunc) error {
	return t.HandleFunc(MethodDelete, path, h)
}

// Lookup returns the handler registered for method and path.
func (t *Table) Lookup(method Method, path string) (Handler, bool) {
	if path == "" || !method.Valid() {
		return nil, false
	}
	nd := t.state.root.lookup(encodeKey(method, path))
	if nd == nil || nd.handler == nil {
		return nil, false
	}
	return nd.handler, true
}

// Dispatch invokes the handler registered for method and path with an
// empty request body, discarding the response. It returns an error wrapping
// ErrNotFound when nothing resolves.
func (t *Table) Dispatch(method Method, path string) error {
	return t.Serve(NewResponse(), &Request{Method: method, Path: path})
}

// Serve resolves req.Method and req.Path and invokes the handler with res
// and req.
func (t *Table) Serve(res *Response, req *Request) error {
	h, ok := t.Lookup(req.Method, req.Path)
	if !ok {
		return notFound(req.Method, req.Path)
	}
	h.ServeRoute(res, req)
	return nil
}

// Routes returns the keys of every registered route in trie order.
func (t *Table) Routes() []string {
	var keys []string
	t.state.root.walk("", func(key string, _ *node) {
		keys = append(keys, strings.TrimPrefix(key, rootSegment))
	})
	return keys
}

// String renders the trie, one segment per line, with '*' marking
// segments that carry a handler.
func (t *Table) String() string {
	var b strings.Builder
	t.state.root.dump(&b, "")
	return b.String()
}

// Use appends middleware for subsequent registrations.
func (t *Table) Use(mw ...Middleware) {
	t.middleware = append(t.middleware, mw...)
}

// With returns a derived table sharing the same trie, with additional
// middleware applied to routes registered through it.
func (t *Table) With(mw ...Middleware) *Table {
	combined := make([]Middleware, 0, len(t.middleware)+len(mw))
	combined = append(combined, t.middleware...)
	combined = append(combined, mw...)
	return &Table{
		state:      t.state,
		middleware: combined,
	}
}

// Group calls fn with a derived table (equivalent to fn(t.With())).
func (t *Table) Group(fn func(t *Table)) {
	if fn == nil {
		return
	}
	fn(t.With())
}

func (t *Table) registerError(err error) error {
	if t.state.panicOnRegisterErr {
		panic(err)
	}
	return err
}

func notFound(method Method, path string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
}
