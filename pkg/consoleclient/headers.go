package consoleclient

import "github.com/camunda-community-hub/consolectl/pkg/key"

// Headers is the fixed header set sent with every request.
type Headers struct {
	ContentType   string
	Authorization string
	UserAgent     string
	Accept        string
}

func NewHeaders(token, userAgent string) Headers {
	return Headers{
		ContentType:   key.ContentTypeJSON,
		Authorization: key.BearerToken(token),
		UserAgent:     userAgent,
		Accept:        key.AcceptAny,
	}
}

func (h Headers) Map() map[string]string {
	return map[string]string{
		key.HeaderContentType:   h.ContentType,
		key.HeaderAuthorization: h.Authorization,
		key.HeaderUserAgent:     h.UserAgent,
		key.HeaderAccept:        h.Accept,
	}
}
