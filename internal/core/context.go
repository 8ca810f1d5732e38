package core

import "context"

// Requester identifies who asked for an export. Export history stores it
// verbatim; the CLI leaves it empty.
type Requester struct {
	IP        string
	UserAgent string
}

type requesterKey struct{}

// WithRequester returns a copy of ctx carrying r.
func WithRequester(ctx context.Context, r Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, r)
}

// RequesterFrom returns the requester stored in ctx, or the zero Requester.
func RequesterFrom(ctx context.Context) Requester {
	r, _ := ctx.Value(requesterKey{}).(Requester)
	return r
}
