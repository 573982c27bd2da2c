package kotori

import "sync"

// SyncTable is a Table guarded by a readers-writer lock, for servers that
// dispatch concurrently or register routes after they start serving.
//
// Handlers run outside the lock, so a handler may register routes.
type SyncTable struct {
	mu    sync.RWMutex
	table *Table
}

// NewSync creates an empty SyncTable.
func NewSync(opts ...Option) *SyncTable {
	return &SyncTable{table: New(opts...)}
}

func (s *SyncTable) Handle(method Method, path string, h Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Handle(method, path, h)
}

func (s *SyncTable) HandleFunc(method Method, path string, h HandlerFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.HandleFunc(method, path, h)
}

func (s *SyncTable) Get(path string, h HandlerFunc) error {
	return s.HandleFunc(MethodGet, path, h)
}

func (s *SyncTable) Post(path string, h HandlerFunc) error {
	return s.HandleFunc(MethodPost, path, h)
}

func (s *SyncTable) Put(path string, h HandlerFunc) error {
	return s.HandleFunc(MethodPut, path, h)
}

func (s *SyncTable) Patch(path string, h HandlerFunc) error {
	return s.HandleFunc(MethodPatch, path, h)
}

func (s *SyncTable) Delete(path string, h HandlerFunc) error {
	return s.HandleFunc(MethodDelete, path, h)
}

// Use appends middleware for subsequent registrations.
func (s *SyncTable) Use(mw ...Middleware) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Use(mw...)
}

func (s *SyncTable) Lookup(method Method, path string) (Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Lookup(method, path)
}

func (s *SyncTable) Dispatch(method Method, path string) error {
	return s.Serve(NewResponse(), &Request{Method: method, Path: path})
}

func (s *SyncTable) Serve(res *Response, req *Request) error {
	h, ok := s.Lookup(req.Method, req.Path)
	if !ok {
		return notFound(req.Method, req.Path)
	}
	h.ServeRoute(res, req)
	return nil
}

func (s *SyncTable) Routes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Routes()
}

func (s *SyncTable) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.String()
}
