// Package proxy is the edge relay: it classifies an inbound request by
// path, rewrites it against the upstream comic site and streams the
// upstream response back untouched.
package proxy

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/brogergvhs/mangaso/internal/comics"
	"github.com/brogergvhs/mangaso/internal/util"
)

type Logger interface {
	Debugf(string, ...any)
	Errorf(string, ...any)
}

type Options struct {
	// Upstream origin, without trailing slash. Defaults to comics.Upstream.
	Upstream string
	// Client performs the upstream GET. It is expected to attach the
	// User-Agent and Referer headers; see util.NewHTTPClient.
	Client *http.Client
	Routes []Route
	Log    Logger
}

type Proxy struct {
	upstream string
	client   *http.Client
	routes   map[string]Route
	log      Logger
	stats    *Stats
}

func New(opts Options) *Proxy {
	upstream := strings.TrimSuffix(opts.Upstream, "/")
	if upstream == "" {
		upstream = comics.Upstream
	}

	client := opts.Client
	if client == nil {
		client = util.NewHTTPClient(util.HTTPClientOptions{
			UserAgent: util.DefaultUserAgent,
			Referer:   upstream,
		})
	}

	routes := opts.Routes
	if routes == nil {
		routes = DefaultRoutes()
	}

	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Path] = r
	}

	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}

	return &Proxy{
		upstream: upstream,
		client:   client,
		routes:   table,
		log:      log,
		stats:    &Stats{},
	}
}

func (p *Proxy) Stats() *Stats {
	return p.stats
}

// Resolve picks the route for u and returns the upstream URL it maps to.
func (p *Proxy) Resolve(u *url.URL) (Route, string, bool) {
	r, ok := p.routes[u.Path]
	if !ok {
		return Route{}, "", false
	}

	return r, r.Target(p.upstream, u.Query()), true
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, target, ok := p.Resolve(r.URL)
	if !ok {
		p.stats.NotFound.Add(1)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}

	p.log.Debugf("relay %s %s -> %s\n", route.Name, r.URL.RequestURI(), target)

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		p.fail(w, target, err)
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.fail(w, target, err)
		return
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			p.log.Debugf("failed to close upstream body for %s: %v\n", target, cerr)
		}
	}()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	n, err := copyFlushing(w, resp.Body)
	p.stats.Relayed.Add(1)
	p.stats.Bytes.Add(n)
	if err != nil {
		p.log.Errorf("relay of %s cut short after %s: %v\n", target, util.Human(n), err)
		return
	}

	p.log.Debugf("relay %s done: %d, %s\n", route.Name, resp.StatusCode, util.Human(n))
}

// fail reports an upstream transport error as-is, without retry.
func (p *Proxy) fail(w http.ResponseWriter, target string, err error) {
	p.stats.Failed.Add(1)
	p.log.Errorf("upstream %s: %v\n", target, err)
	http.Error(w, err.Error(), http.StatusBadGateway)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}
