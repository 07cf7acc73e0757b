// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

/*
TestIntParam parses numeric path parameters and rejects garbage.
*/
func TestIntParam(t *testing.T) {
	request := withURLParam(httptest.NewRequest(http.MethodGet, "/films/7", nil), "id", "7")
	id, err := requestutil.IntParam(request, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	bad := withURLParam(httptest.NewRequest(http.MethodGet, "/films/abc", nil), "id", "abc")
	_, err = requestutil.IntParam(bad, "id")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
}

/*
TestOptionalIntQuery distinguishes absent, valid and malformed values.
*/
func TestOptionalIntQuery(t *testing.T) {
	absent, err := requestutil.OptionalIntQuery(httptest.NewRequest(http.MethodGet, "/films/popular", nil), "year")
	require.NoError(t, err)
	assert.Nil(t, absent)

	present, err := requestutil.OptionalIntQuery(httptest.NewRequest(http.MethodGet, "/films/popular?year=2020", nil), "year")
	require.NoError(t, err)
	require.NotNil(t, present)
	assert.Equal(t, 2020, *present)

	_, err = requestutil.OptionalIntQuery(httptest.NewRequest(http.MethodGet, "/films/popular?year=soon", nil), "year")
	assert.Error(t, err)
}

/*
TestDecodeJSON_Invalid maps malformed bodies to a validation error.
*/
func TestDecodeJSON_Invalid(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/films", strings.NewReader("{"))

	var target map[string]any
	err := requestutil.DecodeJSON(request, &target)

	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
}
