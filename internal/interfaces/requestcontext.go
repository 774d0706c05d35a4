package interfaces

//go:generate mockgen -package=mock -source=requestcontext.go -destination=mock/requestcontext.go

// RequestContext exposes the request-derived sources a vary-by dimension can
// draw from. Accessors report presence explicitly: an enabled dimension the
// request does not carry hashes a fixed sentinel, so absence is itself
// distinguishing. Values are returned verbatim, with no case or whitespace
// normalization.
type RequestContext interface {
	Query(name string) (string, bool)
	Cookie(name string) (string, bool)
	Header(name string) (string, bool)
	User() (string, bool)
	Culture() (string, bool)
}
