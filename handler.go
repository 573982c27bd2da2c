package kotori

import (
	"bytes"
	"net/http"
)

// Request is the value handed to a Handler.
type Request struct {
	Method Method
	Path   string
	Header http.Header
	Body   []byte
}

// Response collects what a Handler writes.
//
// A zero Status is reported as 200 by StatusCode.
type Response struct {
	Status int
	Header http.Header

	body bytes.Buffer
}

// NewResponse returns an empty Response with an initialized Header.
func NewResponse() *Response {
	return &Response{Header: make(http.Header)}
}

func (res *Response) Write(p []byte) (int, error) {
	return res.body.Write(p)
}

func (res *Response) WriteString(s string) (int, error) {
	return res.body.WriteString(s)
}

// Bytes returns the body written so far.
func (res *Response) Bytes() []byte {
	return res.body.Bytes()
}

// StatusCode returns Status, or 200 when no status was set.
func (res *Response) StatusCode() int {
	if res.Status == 0 {
		return http.StatusOK
	}
	return res.Status
}

// Handler responds to a resolved route.
type Handler interface {
	ServeRoute(res *Response, req *Request)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(res *Response, req *Request)

func (f HandlerFunc) ServeRoute(res *Response, req *Request) {
	f(res, req)
}
