package versioning

import (
	"sort"
	"strings"
)

// joinPrefix joins URL path parts into a prefix that starts and ends with "/".
func joinPrefix(parts ...string) string {
	var segs []string
	for _, p := range parts {
		segs = append(segs, segments(p)...)
	}
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/") + "/"
}

// Routes computes the URL prefix served by each version of a docs instance.
// Longer prefixes sort first and the default version (empty path) sorts last,
// so the first prefix match in order is the longest one.
func Routes(baseURL, routeBasePath string, versions []Version) []Route {
	routes := make([]Route, 0, len(versions))
	for _, v := range versions {
		routes = append(routes, Route{Version: v, Prefix: joinPrefix(baseURL, routeBasePath, v.Path)})
	}
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Version.IsDefault() != routes[j].Version.IsDefault() {
			return !routes[i].Version.IsDefault()
		}
		if len(routes[i].Prefix) != len(routes[j].Prefix) {
			return len(routes[i].Prefix) > len(routes[j].Prefix)
		}
		return routes[i].Prefix < routes[j].Prefix
	})
	return routes
}

// CleanPath returns urlPath with a leading and a trailing slash, the form
// route prefixes are compared against.
func CleanPath(urlPath string) string {
	p := urlPath
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// Match returns the route serving urlPath.
func Match(routes []Route, urlPath string) (Route, bool) {
	p := CleanPath(urlPath)
	for _, r := range routes {
		if strings.HasPrefix(p, r.Prefix) {
			return r, true
		}
	}
	return Route{}, false
}
