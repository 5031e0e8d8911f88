package httputils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRequestInfo(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("CF-Connecting-IP", "1.2.3.4")
	r.Header.Set("CF-IPCountry", "RU")

	ri := GetRequestInfo(r)
	assert.Equal(t, "1.2.3.4", ri.RealIP)
	assert.Equal(t, "RU", ri.Country)
}

func TestGetRequestInfo_ForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "5.6.7.8, 10.0.0.1, 10.0.0.2")

	ri := GetRequestInfo(r)
	assert.Equal(t, "5.6.7.8", ri.RealIP)
	assert.Equal(t, "10.0.0.1", ri.FirstProxyIP())
}

func TestGetRequestInfo_RemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "9.9.9.9:12345"

	ri := GetRequestInfo(r)
	assert.Equal(t, "9.9.9.9", ri.RealIP)
	assert.Empty(t, ri.Country)
}
