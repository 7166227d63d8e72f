package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":2}`))
	var req sampleRequest
	require.NoError(t, DecodeAndValidate(r, &req))
	assert.Equal(t, "a", req.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":0}`))
	err := DecodeAndValidate(r, &sampleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name (required)")
	assert.Contains(t, err.Error(), "Count (min)")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":1,"extra":true}`))
	assert.Error(t, DecodeAndValidate(r, &sampleRequest{}))

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(r, &sampleRequest{}), ErrEmptyBody)
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "15"})
	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	for _, raw := range []string{"abc", "0", "-3"} {
		r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err = PathInt64(r, "id")
		assert.ErrorIs(t, err, ErrInvalidPathParam, raw)
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "нет мест")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"нет мест"}`, w.Body.String())
}
