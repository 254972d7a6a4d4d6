package middleware

import (
	"crypto/subtle"
	"net/http"
	"studio/config"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/transport/http/response"
)

// Auth guards the administrative routes. The reference deployment ran them
// wide open; the capability check here is opt-in and keyed on APP_API_KEY,
// with the role model left to the deployment.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	cfg *config.Config
}

func NewAuthMiddleware(cfg *config.Config) Auth {
	return &authImpl{cfg: cfg}
}

// APIKey rejects requests whose X-API-Key header does not match the
// configured key. When no key is configured the check is disabled.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == "" {
			next.ServeHTTP(writer, request)

			return
		}

		provided := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.cfg.App.APIKey)) != 1 {
			response.WithError(writer, failure.Unauthorized("invalid or missing API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
