package assets

import "strings"

// URLResolver turns a stored asset key (e.g. "ever-icons/open.svg") into a
// fully qualified public URL.
type URLResolver interface {
	URL(key string) string
}

func NewBaseURLResolver(baseURL string) URLResolver {
	return &baseURLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

type baseURLResolver struct {
	baseURL string
}

func (r *baseURLResolver) URL(key string) string {
	if key == "" {
		return ""
	}
	return r.baseURL + "/" + strings.TrimLeft(key, "/")
}
