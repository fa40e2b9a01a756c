// Package auth resolves the user's session: whether mutations should
// target the remote backend or the local fallback store.
package auth

import (
	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/api"
	"github.com/tvim/tvim/internal/config"
)

// Session is the authentication state the rest of the app keys off. It
// is deliberately narrow: authenticated selects the remote store. The
// token probe runs synchronously before the program starts, so there is
// no in-between state to represent.
type Session struct {
	Authenticated bool
}

// Resolve determines the session from config. A configured token is
// verified with a cheap list call against the backend; a token the
// backend rejects as unauthorized degrades to the local store rather
// than failing startup. forceLocal skips the remote entirely.
func Resolve(cfg *config.Config, client *api.Client, forceLocal bool) Session {
	if forceLocal || !cfg.HasToken() {
		return Session{}
	}

	if _, err := client.ListTodos(); err != nil {
		if apiErr, ok := api.IsAPIError(err); ok && apiErr.IsUnauthorized() {
			log.Warn().Err(err).Msg("token rejected by backend, falling back to local store")
			return Session{}
		}
		// Network or server trouble: still treat the session as
		// authenticated, the optimistic layer absorbs failures.
		log.Warn().Err(err).Msg("backend probe failed, continuing authenticated")
	}

	return Session{Authenticated: true}
}
