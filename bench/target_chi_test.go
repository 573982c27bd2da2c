//go:build chi

package bench

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiAdapter struct{}

func (chiAdapter) Name() string { return "chi" }

func (chiAdapter) BuildStatic(path string) (http.Handler, error) {
	r := chi.NewRouter()
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {})
	return r, nil
}

func (chiAdapter) BuildPaths(paths []string) (http.Handler, error) {
	r := chi.NewRouter()
	for _, p := range paths {
		r.Get(p, func(w http.ResponseWriter, req *http.Request) {})
	}
	return r, nil
}

func (chiAdapter) BuildManyStatic(prefix string, n int) (http.Handler, string, error) {
	r := chi.NewRouter()
	for i := 0; i < n; i++ {
		r.Get(itemPath(prefix, i), func(w http.ResponseWriter, req *http.Request) {})
	}
	return r, itemPath(prefix, n-1), nil
}

func init() {
	registerAdapter(chiAdapter{})
}
