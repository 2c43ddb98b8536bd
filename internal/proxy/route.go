package proxy

import (
	"net/url"
	"strings"

	"github.com/brogergvhs/mangaso/internal/comics"
)

// Route maps an inbound path onto an upstream URL. Target receives the
// upstream origin and the inbound query and builds the URL by plain string
// concatenation; query values are not validated.
type Route struct {
	Name   string
	Path   string
	Target func(upstream string, q url.Values) string
}

// DefaultRoutes is the relay's route table: search, detail and hot list.
func DefaultRoutes() []Route {
	return []Route{
		{
			Name: "search",
			Path: "/api/search",
			Target: func(upstream string, q url.Values) string {
				return upstream + "/search?keyword=" + EscapeComponent(q.Get("q"))
			},
		},
		{
			Name: "detail",
			Path: "/api/detail",
			Target: func(upstream string, q url.Values) string {
				u := q.Get("url")
				// list items without a url point at the canonical origin
				// even when a mirror is configured
				if strings.Contains(u, upstream) || strings.Contains(u, comics.Upstream) {
					return u
				}
				return upstream + u
			},
		},
		{
			Name: "hot",
			Path: "/api/hot",
			Target: func(upstream string, _ url.Values) string {
				return upstream + "/getUpdate?page=0"
			},
		},
	}
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s the way a URI component is encoded:
// spaces become %20 and the marks ! ' ( ) * stay literal.
func EscapeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
