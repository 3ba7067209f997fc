package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionFromWMO(t *testing.T) {
	tests := []struct {
		code int
		want Condition
	}{
		{0, Clear},
		{2, Clouds},
		{45, Fog},
		{53, Drizzle},
		{61, Rain},
		{67, Rain},
		{81, Rain},
		{71, Snow},
		{77, Snow},
		{86, Snow},
		{95, Thunderstorm},
		{99, Thunderstorm},
		{42, Unknown},
		{-1, Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConditionFromWMO(tt.code), "code %d", tt.code)
	}
}

func TestOpenMeteoCurrent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "40.1800", r.URL.Query().Get("latitude"))
		w.Write([]byte(`{"current":{"temperature_2m":-3.5,"weather_code":73}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteo(40.18, 44.51, WithBaseURL(srv.URL))

	r, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Snow, r.Condition)
	assert.Equal(t, -3.5, r.Temperature)

	// Second call served from cache.
	_, err = p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenMeteoCurrentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewOpenMeteo(0, 0, WithBaseURL(srv.URL))

	_, err := p.Current(context.Background())
	assert.Error(t, err)
}

func TestStaticProvider(t *testing.T) {
	p := Static{Report: Report{Condition: Rain}}

	r, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Rain, r.Condition)
}
