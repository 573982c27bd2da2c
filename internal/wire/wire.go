// Package wire reads the request line, headers and body of a plain HTTP/1.x
// request from a connection and writes minimal responses back.
//
// It covers what the dispatcher needs and nothing more: no chunked bodies,
// no keep-alive, no continuation lines.
package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"slices"
	"strconv"
	"strings"

	"github.com/catatsuy/kotori"
)

// MaxBodyBytes bounds the Content-Length a request may declare.
const MaxBodyBytes = 1 << 20

// ErrMalformedRequest is returned for requests that cannot be parsed.
var ErrMalformedRequest = errors.New("malformed request")

// ReadRequest parses one request from r.
//
// The method is passed through as sent; resolving it against the route
// table is left to the caller.
func ReadRequest(r *bufio.Reader) (*kotori.Request, error) {
	tp := textproto.NewReader(r)
	line, err := tp.ReadLine()
	if err != nil {
		return nil, err
	}
	method, path, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	mh, err := tp.ReadMIMEHeader()
	if err != nil && !(errors.Is(err, io.EOF) && len(mh) == 0) {
		return nil, fmt.Errorf("%w: headers: %w", ErrMalformedRequest, err)
	}
	req := &kotori.Request{
		Method: kotori.Method(method),
		Path:   path,
		Header: http.Header(mh),
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	body, err := readBody(r, req.Header)
	if err != nil {
		return nil, err
	}
	req.Body = body
	return req, nil
}

// parseRequestLine splits "METHOD SP PATH SP VERSION". The query string is
// dropped from the path.
func parseRequestLine(line string) (method, path string, err error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: request line %q", ErrMalformedRequest, line)
	}
	method, target, version := parts[0], parts[1], parts[2]
	if method == "" || target == "" {
		return "", "", fmt.Errorf("%w: request line %q", ErrMalformedRequest, line)
	}
	if !strings.HasPrefix(version, "HTTP/") {
		return "", "", fmt.Errorf("%w: version %q", ErrMalformedRequest, version)
	}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	return method, target, nil
}

func readBody(r io.Reader, h http.Header) ([]byte, error) {
	cl := h.Get("Content-Length")
	if cl == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(cl, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: Content-Length %q", ErrMalformedRequest, cl)
	}
	if n > MaxBodyBytes {
		return nil, fmt.Errorf("%w: body of %d bytes exceeds %d", ErrMalformedRequest, n, MaxBodyBytes)
	}
	if n == 0 {
		return nil, nil
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: body: %w", ErrMalformedRequest, err)
	}
	return body, nil
}

// WriteResponse writes a status line, the headers in sorted order, a
// Content-Length header and body.
func WriteResponse(w io.Writer, status int, header http.Header, body []byte) error {
	bw := bufio.NewWriter(w)
	text := http.StatusText(status)
	if text == "" {
		text = "status code " + strconv.Itoa(status)
	}
	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", status, text)

	keys := make([]string, 0, len(header))
	for k := range header {
		if textproto.CanonicalMIMEHeaderKey(k) == "Content-Length" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range header[k] {
			fmt.Fprintf(bw, "%s: %s\r\n", k, v)
		}
	}
	fmt.Fprintf(bw, "Content-Length: %d\r\n\r\n", len(body))
	if _, err := bw.Write(body); err != nil {
		return err
	}
	return bw.Flush()
}
