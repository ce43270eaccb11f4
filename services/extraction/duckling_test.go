package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newDucklingServer serves canned responses keyed by the requested dimension.
func newDucklingServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		dims := r.PostFormValue("dims")
		w.Header().Set("Content-Type", "application/json")
		for dim, body := range responses {
			if dims == `["`+dim+`"]` {
				_, _ = w.Write([]byte(body))
				return
			}
		}
		_, _ = w.Write([]byte(`[]`))
	}))
}

func TestDucklingClient_ParseTime(t *testing.T) {
	srv := newDucklingServer(t, map[string]string{
		"time": `[{"value":{"values":[{"value":"2026-10-04T00:00:00.000-07:00","grain":"day"}],"value":"2026-10-04T00:00:00.000-07:00","grain":"day","type":"value"}}]`,
	})
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	ts, err := client.ParseTime(context.Background(), "4th of October")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, 4, ts.Day())
}

func TestDucklingClient_ParseNumber(t *testing.T) {
	srv := newDucklingServer(t, map[string]string{
		"number": `[{"value":{"value":2,"type":"value"}}]`,
	})
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	n, err := client.ParseNumber(context.Background(), "two")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 2.0, *n)
}

func TestDucklingClient_ParseDuration_NormalizedSeconds(t *testing.T) {
	// Duckling normalizes "2 days" to 172800 seconds; the client reports days.
	srv := newDucklingServer(t, map[string]string{
		"duration": `[{"value":{"value":2,"unit":"day","normalized":{"value":172800,"unit":"second"}}}]`,
	})
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	days, err := client.ParseDuration(context.Background(), "2 days")
	require.NoError(t, err)
	require.NotNil(t, days)
	assert.Equal(t, 2.0, *days)
}

func TestDucklingClient_ParseEmail(t *testing.T) {
	srv := newDucklingServer(t, map[string]string{
		"email": `[{"value":{"value":"detlef@example.com"}}]`,
	})
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	addr, err := client.ParseEmail(context.Background(), "it's detlef@example.com")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, "detlef@example.com", *addr)
}

func TestDucklingClient_NoEntityMeansNoResult(t *testing.T) {
	srv := newDucklingServer(t, nil)
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	n, err := client.ParseNumber(context.Background(), "no number here")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestDucklingClient_ServerErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	client := NewDucklingClient(srv.URL, zaptest.NewLogger(t))

	_, err := client.ParseNumber(context.Background(), "2")
	assert.Error(t, err)
}

func TestDucklingClient_UnreachableServiceIsAnError(t *testing.T) {
	client := NewDucklingClient("http://127.0.0.1:1", zaptest.NewLogger(t))

	_, err := client.ParseTime(context.Background(), "tomorrow")
	assert.Error(t, err)
}
