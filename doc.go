// Package kotori provides a small request dispatcher backed by a compressed
// prefix trie.
//
// Routes are stored under the key "<METHOD><PATH>" (for example
// "GET/users"); keys that share a prefix share trie nodes, and nodes are
// split when a new key diverges from, extends, or ends inside an existing
// one.
//
// Example:
//
//	t := kotori.New(kotori.WithPanicOnRegisterError())
//	t.Get("/hello", func(res *kotori.Response, req *kotori.Request) {
//		res.WriteString("hello")
//	})
//	if err := t.Dispatch(kotori.MethodGet, "/hello"); errors.Is(err, kotori.ErrNotFound) {
//		// answer 404
//	}
package kotori
