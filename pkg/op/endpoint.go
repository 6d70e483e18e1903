package op

import "strings"

type Endpoint string

func NewEndpoint(path string) Endpoint {
	return Endpoint(path)
}

func (e Endpoint) Relative() string {
	return joinPath(string(e))
}

// Absolute returns the endpoint URL below origin and the base path
// the provider is mounted on.
func (e Endpoint) Absolute(origin, basePath string) string {
	return strings.TrimSuffix(origin, "/") + joinPath(basePath, string(e))
}

// joinPath joins path elements with exactly one slash between segments.
// The result always starts with a slash. A trailing slash on the
// last non-empty element is kept.
func joinPath(elems ...string) string {
	var b strings.Builder
	trailing := false
	for _, elem := range elems {
		if elem == "" {
			continue
		}
		for _, seg := range strings.Split(elem, "/") {
			if seg == "" {
				continue
			}
			b.WriteByte('/')
			b.WriteString(seg)
		}
		trailing = strings.HasSuffix(elem, "/")
	}
	if b.Len() == 0 {
		return "/"
	}
	if trailing {
		b.WriteByte('/')
	}
	return b.String()
}
