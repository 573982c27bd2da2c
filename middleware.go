package kotori

// Middleware wraps a Handler.
//
// Middleware is applied in registration order, so Use(A, B) executes as:
// A -> B -> handler.
type Middleware func(Handler) Handler

func chainMiddlewares(h Handler, mws []Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
