// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

/*
TestNotFound_Message verifies the resource name is embedded in the message.
*/
func TestNotFound_Message(t *testing.T) {
	err := apperr.NotFound("Film")

	assert.Equal(t, "Film not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestAs_TraversesChain verifies AppErrors are found behind fmt.Errorf wrapping.
*/
func TestAs_TraversesChain(t *testing.T) {
	wrapped := fmt.Errorf("film service: %w", apperr.Conflict("duplicate"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsNotFound(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestWithCause keeps the original error untouched and exposes the cause.
*/
func TestWithCause(t *testing.T) {
	base := apperr.NotFound("Genre")
	cause := errors.New("genre 42 missing")

	withCause := base.WithCause(cause)

	assert.Nil(t, base.Cause)
	assert.ErrorIs(t, withCause, cause)
	assert.Equal(t, base.Message, withCause.Message)
}
