//go:build httprouter

package bench

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type httprouterAdapter struct{}

func (httprouterAdapter) Name() string { return "httprouter" }

func (httprouterAdapter) BuildStatic(path string) (http.Handler, error) {
	r := httprouter.New()
	r.GET(path, func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {})
	return r, nil
}

func (httprouterAdapter) BuildPaths(paths []string) (http.Handler, error) {
	r := httprouter.New()
	for _, p := range paths {
		r.GET(p, func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {})
	}
	return r, nil
}

func (httprouterAdapter) BuildManyStatic(prefix string, n int) (http.Handler, string, error) {
	r := httprouter.New()
	for i := 0; i < n; i++ {
		r.GET(itemPath(prefix, i), func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {})
	}
	return r, itemPath(prefix, n-1), nil
}

func init() {
	registerAdapter(httprouterAdapter{})
}
