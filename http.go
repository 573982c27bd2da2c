package kotori

import (
	"io"
	"net/http"
	"strconv"
)

// ServeHTTP implements http.Handler. Unknown methods and unregistered paths
// are answered with 404.
func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveHTTP(t, w, r)
}

// ServeHTTP implements http.Handler.
func (s *SyncTable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveHTTP(s, w, r)
}

type dispatcher interface {
	Serve(res *Response, req *Request) error
}

func serveHTTP(s dispatcher, w http.ResponseWriter, r *http.Request) {
	if r == nil || r.URL == nil {
		http.NotFound(w, r)
		return
	}
	req := &Request{
		Method: Method(r.Method),
		Path:   r.URL.Path,
		Header: r.Header,
	}
	if r.Body != nil && r.ContentLength != 0 {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		req.Body = body
	}
	res := NewResponse()
	if err := s.Serve(res, req); err != nil {
		http.NotFound(w, r)
		return
	}
	for k, vs := range res.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	body := res.Bytes()
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(res.StatusCode())
	_, _ = w.Write(body)
}
