package httpcfg

import (
	"crypto/tls"
	"net"
	"net/http"
)

// Transport materializes configuration hints into an http.Transport.
// Unset options fall back to the global defaults.
func Transport(cfg AttributeMap) *http.Transport {
	cfg = cfg.Merge(GlobalDefaults())

	socketTimeout := GetOrDefault(cfg, SocketTimeout, defaultSocketTimeout)
	connectTimeout := GetOrDefault(cfg, ConnectTimeout, defaultConnectTimeout)
	maxConns := GetOrDefault(cfg, MaxConnections, defaultMaxConnections)
	strict := GetOrDefault(cfg, StrictHostnameVerification, true)

	dialer := &net.Dialer{ //nolint:exhaustruct
		Timeout: connectTimeout,
	}

	return &http.Transport{ //nolint:exhaustruct
		DialContext:           dialer.DialContext,
		MaxConnsPerHost:       maxConns,
		MaxIdleConns:          maxConns,
		MaxIdleConnsPerHost:   maxConns,
		ResponseHeaderTimeout: socketTimeout,
		TLSClientConfig: &tls.Config{ //nolint:exhaustruct,gosec
			InsecureSkipVerify: !strict,
		},
	}
}
