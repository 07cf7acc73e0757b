// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/genre"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repository := &countingRepository{genres: map[int]*genre.Genre{
		1: {ID: 1, Name: "Comedy"},
		2: {ID: 2, Name: "Drama"},
	}}
	service := genre.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))

	server := httptest.NewServer(genre.NewHandler(service).Routes())
	t.Cleanup(server.Close)
	return server
}

/*
TestHandler_GetGenre covers the found, missing and malformed cases.
*/
func TestHandler_GetGenre(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"found", "/1", http.StatusOK},
		{"missing", "/42", http.StatusNotFound},
		{"malformed", "/comedy", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, tt.status, response.StatusCode)
		})
	}
}

/*
TestHandler_ListGenres returns the catalog in id order inside the data envelope.
*/
func TestHandler_ListGenres(t *testing.T) {
	server := newTestServer(t)

	response, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer response.Body.Close()

	var envelope struct {
		Data []genre.Genre `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))

	assert.Equal(t, []genre.Genre{{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}}, envelope.Data)
}
