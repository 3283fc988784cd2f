package source

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxiedURL(t *testing.T) {
	assert.Equal(t, "https://a.test/x", ProxiedURL("", "https://a.test/x"))
	assert.Equal(t, "https://cors.deno.dev/https://a.test/x", ProxiedURL("https://cors.deno.dev", "https://a.test/x"))
	assert.Equal(t, "https://cors.deno.dev/https://a.test/x", ProxiedURL("https://cors.deno.dev/", "https://a.test/x"))
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"name": "crab"}`))}

	require.NoError(t, DecodeJSON(resp, &v))
	assert.Equal(t, "crab", v.Name)
}

func TestDecodeJSON_Status(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusUnauthorized, Body: io.NopCloser(strings.NewReader(`{}`))}

	err := DecodeJSON(resp, &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.False(t, errors.Is(err, ErrMalformedResponse))
	assert.Equal(t, "unexpected status: 401", err.Error())
}

func TestDecodeJSON_Malformed(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"name":`))}

	err := DecodeJSON(resp, &struct{}{})
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}
