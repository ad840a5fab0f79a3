package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mesaPos/internal/modules/realtime/infrastructure"
	"mesaPos/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewEventsHandler exposes /ws/events: the firehose of order and restaurant
// lifecycle events. With a validator configured the token may arrive in the
// query string or the Authorization header; without one the stream is open.
func NewEventsHandler(hub *infrastructure.Hub, validator auth.TokenValidator, sendBuffer int) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := ""
		if validator != nil {
			token := strings.TrimSpace(c.QueryParam("token"))
			if token == "" {
				authz := strings.TrimSpace(c.Request().Header.Get("Authorization"))
				if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					token = strings.TrimSpace(authz[7:])
				}
			}
			claims, err := validator.Validate(token)
			if err != nil {
				slog.Warn("ws connect rejected", slog.String("remote", c.RealIP()), slog.Any("error", err))
				if strings.TrimSpace(token) == "" {
					return echo.NewHTTPError(http.StatusBadRequest, "missing token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID = claims.RegisteredClaims.Subject
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("remote", c.RealIP()), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, userID, c.RealIP(), sendBuffer)
		hub.AttachClient(client)

		go client.WritePump()
		go client.ReadPump()
		return nil
	}
}
