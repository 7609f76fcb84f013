package app

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := stderrors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := errors.Wrap(irErr, "wrapping message")
	assert.True(t, IsInvalidRequestError(wrapperErr))

	fmtErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(fmtErr))
}

func TestIsTooManyRequestsError(t *testing.T) {
	stdErr := stderrors.New("simple error")
	assert.False(t, IsTooManyRequestsError(stdErr))

	tmErr := TooManyRequestsError("rate limit exceeded")
	assert.True(t, IsTooManyRequestsError(tmErr))

	wrapperErr := errors.Wrap(tmErr, "wrapping message")
	assert.True(t, IsTooManyRequestsError(wrapperErr))

	// The client layer wraps transport errors with fmt's %w verb; the
	// helper must see through those chains too.
	fmtErr := fmt.Errorf("querying profile: %w", fmt.Errorf("doing http request: %w", tmErr))
	assert.True(t, IsTooManyRequestsError(fmtErr))
}
