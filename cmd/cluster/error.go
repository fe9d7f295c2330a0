package cluster

import "github.com/giantswarm/microerror"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var invalidFlagError = &microerror.Error{
	Kind: "invalidFlagError",
}

// IsInvalidFlag asserts invalidFlagError.
func IsInvalidFlag(err error) bool {
	return microerror.Cause(err) == invalidFlagError
}

var parameterNotFoundError = &microerror.Error{
	Kind: "parameterNotFoundError",
}

// IsParameterNotFound asserts parameterNotFoundError.
func IsParameterNotFound(err error) bool {
	return microerror.Cause(err) == parameterNotFoundError
}

var clusterNotReadyError = &microerror.Error{
	Kind: "clusterNotReadyError",
}

// IsClusterNotReady asserts clusterNotReadyError.
func IsClusterNotReady(err error) bool {
	return microerror.Cause(err) == clusterNotReadyError
}

var clusterNotDeletedError = &microerror.Error{
	Kind: "clusterNotDeletedError",
}

// IsClusterNotDeleted asserts clusterNotDeletedError.
func IsClusterNotDeleted(err error) bool {
	return microerror.Cause(err) == clusterNotDeletedError
}
