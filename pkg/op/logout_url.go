package op

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// AppRootMarker prefixes logout URLs relative to the
// base path the application is mounted on.
const AppRootMarker = "~/"

var ErrInvalidLogoutURL = errors.New("invalid logout url")

// ResolveLogoutURL resolves target against the request origin
// (scheme, host and port) and the base path of the application.
//
// Targets starting with [AppRootMarker] or a single slash are local
// and placed below basePath. Absolute http(s) URLs are returned as they are.
// Query and fragment are always removed.
func ResolveLogoutURL(origin, basePath, target string) (string, error) {
	if isLocalURL(target) {
		return resolveLocal(origin, basePath, strings.TrimPrefix(target, "~"))
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidLogoutURL, target, err)
	}
	if !isHTTPScheme(u.Scheme) || u.Host == "" {
		return "", fmt.Errorf("%w %q: must be absolute or start with %q", ErrInvalidLogoutURL, target, AppRootMarker)
	}
	u.RawQuery, u.ForceQuery = "", false
	u.Fragment, u.RawFragment = "", ""
	return u.String(), nil
}

func isLocalURL(target string) bool {
	if strings.HasPrefix(target, AppRootMarker) {
		return true
	}
	// "//host" and "/\host" are treated as network paths by browsers.
	return strings.HasPrefix(target, "/") &&
		!strings.HasPrefix(target, "//") &&
		!strings.HasPrefix(target, `/\`)
}

func resolveLocal(origin, basePath, path string) (string, error) {
	o, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("%w: origin %q: %v", ErrInvalidLogoutURL, origin, err)
	}
	if !isHTTPScheme(o.Scheme) || o.Host == "" {
		return "", fmt.Errorf("%w: origin %q is not absolute", ErrInvalidLogoutURL, origin)
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if hasDotSegment(basePath) || hasDotSegment(path) {
		return "", fmt.Errorf("%w %q: dot segments are not allowed", ErrInvalidLogoutURL, path)
	}
	return o.Scheme + "://" + o.Host + joinPath(basePath, path), nil
}

// hasDotSegment reports whether p contains "." or ".." segments,
// including their percent-encoded forms. Browsers also split on backslashes.
func hasDotSegment(p string) bool {
	segments := strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
	for _, seg := range segments {
		switch strings.ToLower(seg) {
		case ".", "..", "%2e", "%2e%2e", ".%2e", "%2e.":
			return true
		}
	}
	return false
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
