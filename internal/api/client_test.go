package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zerrors "github.com/zpodfactory/zpodtg/internal/errors"
	"github.com/zpodfactory/zpodtg/internal/output"
)

func TestGetZPod_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zpods/name=lab01", r.URL.Path)
		assert.Equal(t, "secret-token", r.Header.Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 42,
			"name": "lab01",
			"domain": "lab01.example.com",
			"components": [{"component": {"component_name": "zbox"}, "ip": "10.1.2.10"}],
			"networks": [{"cidr": "10.1.2.0/24"}]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret-token")
	zpod, err := client.GetZPod(context.Background(), "lab01")
	require.NoError(t, err)

	assert.Equal(t, "lab01", zpod.Name)
	assert.Equal(t, float64(42), zpod.ID)
	assert.Equal(t, "lab01.example.com", zpod.Domain)
	assert.Nil(t, zpod.Description)
	require.Len(t, zpod.Components, 1)
	require.Len(t, zpod.Networks, 1)
	assert.Equal(t, "10.1.2.0/24", zpod.Networks[0]["cidr"])
}

func TestGetZPod_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "bad-token").GetZPod(context.Background(), "lab01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrAuth))
	assert.False(t, errors.Is(err, zerrors.ErrAPI))
}

func TestGetZPod_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").GetZPod(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrNotFound))
	assert.False(t, errors.Is(err, zerrors.ErrAPI))
	assert.Contains(t, err.Error(), `zPod "missing" not found`)
}

func TestGetZPod_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").GetZPod(context.Background(), "lab01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrAPI))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

func TestGetZPod_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := New(srv.URL, "tok").GetZPod(context.Background(), "lab01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrConnection))
}

func TestGetZPod_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").GetZPod(context.Background(), "lab01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrAPI))
}

func TestListZPods_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zpods", r.URL.Path)
		w.Write([]byte(`[{"id": 1, "name": "alpha"}, {"id": 2, "name": "beta"}]`))
	}))
	defer srv.Close()

	zpods, err := New(srv.URL, "tok").ListZPods(context.Background())
	require.NoError(t, err)
	require.Len(t, zpods, 2)
	assert.Equal(t, "alpha", zpods[0].Name)
	assert.Equal(t, "beta", zpods[1].Name)
}

// Only the single-zPod lookup treats 404 as not-found; a 404 from the
// collection endpoint is an unexpected API response.
func TestListZPods_NotFoundIsGenericAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").ListZPods(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, zerrors.ErrAPI))
	assert.False(t, errors.Is(err, zerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "404")
}

func TestGetDNSRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zpods/42/dns", r.URL.Path)
		w.Write([]byte(`[{"hostname": "zbox", "ip": "10.1.2.10"}]`))
	}))
	defer srv.Close()

	records := New(srv.URL, "tok").GetDNSRecords(context.Background(), float64(42))
	require.Len(t, records, 1)
	assert.Equal(t, "zbox", records[0]["hostname"])
}

func TestGetDNSRecords_DegradesToEmptyOnError(t *testing.T) {
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{})
	output.SetLogWriter(&buf)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	records := New(srv.URL, "tok").GetDNSRecords(context.Background(), float64(42))
	assert.Empty(t, records)
	assert.NotNil(t, records)
	assert.Contains(t, buf.String(), "could not fetch DNS entries")
}

func TestGetSettings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/settings", r.URL.Path)
		w.Write([]byte(`[{"name": "zpodfactory_host", "value": "ntp.local", "description": "factory NTP"}]`))
	}))
	defer srv.Close()

	settings := New(srv.URL, "tok").GetSettings(context.Background())
	require.Len(t, settings, 1)
	assert.Equal(t, "zpodfactory_host", settings[0].Name)
	assert.Equal(t, "ntp.local", settings[0].Value)

	// Fields beyond name/value survive in the raw object.
	assert.Equal(t, "factory NTP", settings[0].Raw["description"])
}

func TestGetSettings_DegradesToEmptyOnConnectionFailure(t *testing.T) {
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{})
	output.SetLogWriter(&buf)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	settings := New(srv.URL, "tok").GetSettings(context.Background())
	assert.Empty(t, settings)
	assert.Contains(t, buf.String(), "could not fetch settings")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zpods", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL+"/", "tok").ListZPods(context.Background())
	assert.NoError(t, err)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "42", formatID(float64(42)))
	assert.Equal(t, "7", formatID(7))
	assert.Equal(t, "abc", formatID("abc"))
	assert.Equal(t, "<nil>", formatID(nil))
}
