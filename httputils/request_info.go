package httputils

import (
	"net/http"
	"strings"
)

// RequestInfo контейнер с мета-информацией о реквесте.
type RequestInfo struct {
	RealIP    string
	ProxyIPs  []string
	Country   string
	UserAgent string
}

// GetRequestInfo извлекает мета-информацию из HTTP запроса.
// Заголовки CF-* выставляет фронтовый прокси; X-Forwarded-For — запасной
// вариант, последним берётся адрес соединения.
func GetRequestInfo(r *http.Request) (res RequestInfo) {
	res.RealIP = r.Header.Get("CF-Connecting-IP")
	if res.RealIP == "" {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ipsl := strings.Split(xff, ", ")
			res.RealIP = ipsl[0]
			if len(ipsl) > 1 {
				res.ProxyIPs = ipsl[1:]
			}
		}
	}
	if res.RealIP == "" {
		host := r.RemoteAddr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		res.RealIP = host
	}
	res.Country = r.Header.Get("CF-IPCountry")
	res.UserAgent = r.Header.Get("User-Agent")
	return res
}

func (ri RequestInfo) FirstProxyIP() string {
	if len(ri.ProxyIPs) > 0 {
		return ri.ProxyIPs[0]
	}
	return ""
}
