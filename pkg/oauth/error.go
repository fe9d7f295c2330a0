package oauth

import "github.com/giantswarm/microerror"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var tokenRequestError = &microerror.Error{
	Kind: "tokenRequestError",
}

// IsTokenRequest asserts tokenRequestError.
func IsTokenRequest(err error) bool {
	return microerror.Cause(err) == tokenRequestError
}
