package common

import (
	"github.com/futig/study-portal-ai/internal/config"
	pkgHTTP "github.com/futig/study-portal-ai/pkg/http"
)

// NewBaseConnector builds a JSON connector from client settings; auth decides how the token is attached
func NewBaseConnector(cfg config.HTTPClientConfig, auth pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		BaseURL: cfg.Url,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	}
	if auth != nil {
		opts = append(opts, auth)
	}

	return pkgHTTP.NewConnector(connCfg, opts...)
}
