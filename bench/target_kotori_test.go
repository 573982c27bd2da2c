package bench

import (
	"net/http"

	"github.com/catatsuy/kotori"
)

type kotoriAdapter struct{}

func (kotoriAdapter) Name() string { return "kotori" }

func noop(res *kotori.Response, req *kotori.Request) {}

func (kotoriAdapter) BuildStatic(path string) (http.Handler, error) {
	t := kotori.New()
	if err := t.Get(path, noop); err != nil {
		return nil, err
	}
	return t, nil
}

func (kotoriAdapter) BuildPaths(paths []string) (http.Handler, error) {
	t := kotori.New()
	for _, p := range paths {
		if err := t.Get(p, noop); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (kotoriAdapter) BuildManyStatic(prefix string, n int) (http.Handler, string, error) {
	t := kotori.New()
	for i := 0; i < n; i++ {
		if err := t.Get(itemPath(prefix, i), noop); err != nil {
			return nil, "", err
		}
	}
	return t, itemPath(prefix, n-1), nil
}

func init() {
	registerAdapter(kotoriAdapter{})
}
