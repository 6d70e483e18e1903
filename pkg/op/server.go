package op

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/muhlemmer/gu"
)

type StatusError struct {
	parent     error
	statusCode int
}

func NewStatusError(parent error, statusCode int) StatusError {
	return StatusError{
		parent:     parent,
		statusCode: statusCode,
	}
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: %s", http.StatusText(e.statusCode), e.parent.Error())
}

func (e StatusError) Unwrap() error {
	return e.parent
}

func (e StatusError) Is(err error) bool {
	var target StatusError
	if !errors.As(err, &target) {
		return false
	}
	return errors.Is(e.parent, target.parent) &&
		e.statusCode == target.statusCode
}

// Request contains the [http.Request] informational fields
// and parsed Data from the request body (POST) or URL parameters (GET).
// Data can be assumed to be validated according to the applicable
// standard for the specific endpoints.
type Request[T any] struct {
	Method   string
	URL      *url.URL
	Header   http.Header
	Form     url.Values
	PostForm url.Values
	Cookies  []*http.Cookie
	Data     *T
}

func newRequest[T any](r *http.Request, data *T) *Request[T] {
	return &Request[T]{
		Method:   r.Method,
		URL:      r.URL,
		Header:   r.Header,
		Form:     r.Form,
		PostForm: r.PostForm,
		Cookies:  r.Cookies(),
		Data:     data,
	}
}

// Cookie returns the named cookie of the request or [http.ErrNoCookie].
func (r *Request[T]) Cookie(name string) (*http.Cookie, error) {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, http.ErrNoCookie
}

// Redirect is a special response type which will
// initiate a [http.StatusFound] redirect.
type Redirect struct {
	// Header map will be merged with the
	// header on the [http.ResponseWriter].
	Header http.Header

	URL string
}

func NewRedirect(url string) *Redirect {
	return &Redirect{URL: url}
}

func (red *Redirect) writeOut(w http.ResponseWriter, r *http.Request) {
	gu.MapMerge(red.Header, w.Header())
	http.Redirect(w, r, red.URL, http.StatusFound)
}
