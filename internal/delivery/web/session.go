package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ratesmart/config"
	"ratesmart/internal/infra/session"
)

const keySession = "web_session"

// skipSession is true for paths that never read or write session state.
func skipSession(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/static/")
}

// sessionMiddleware loads the browser's session before the handler runs and
// saves it afterwards. A new session is only stored, and its cookie only
// sent, once the handler has put something in it.
func sessionMiddleware(store *session.Store, cfg *config.WebConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipSession(c.Request().URL.Path) {
				return next(c)
			}

			id := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				id = cookie.Value
			}

			data, known := store.Get(id)
			if !known {
				id = ""
			}
			c.Set(keySession, &data)

			keep := func() bool {
				if !known && data.IsEmpty() {
					return false
				}
				if id == "" {
					id = session.NewID()
				}

				return true
			}

			// The cookie has to go out with the headers, which are usually
			// written inside the handler.
			c.Response().Before(func() {
				if !keep() {
					return
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cfg.SessionTTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			})

			err := next(c)
			if keep() {
				store.Save(id, data)
			}

			return err
		}
	}
}

// sessionFrom returns the request's session. Outside the middleware it is a
// throwaway empty one.
func sessionFrom(c echo.Context) *session.Data {
	if data, ok := c.Get(keySession).(*session.Data); ok {
		return data
	}

	data := &session.Data{}
	c.Set(keySession, data)

	return data
}
