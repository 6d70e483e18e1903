package mock

import "errors"

var ErrClientNotFound = errors.New("client not found")
