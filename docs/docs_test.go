package docs_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"playchain/docs"
)

func TestRegisterOpenAPIService(t *testing.T) {
	rtr := mux.NewRouter()
	docs.RegisterOpenAPIService("playchain", rtr)

	srv := httptest.NewServer(rtr)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "playchain")
	require.Contains(t, string(body), "/static/openapi.json")

	spec, err := http.Get(srv.URL + "/static/openapi.json")
	require.NoError(t, err)
	defer spec.Body.Close()
	require.Equal(t, http.StatusOK, spec.StatusCode)

	specBody, err := io.ReadAll(spec.Body)
	require.NoError(t, err)
	require.Contains(t, string(specBody), "gamehub")
}
