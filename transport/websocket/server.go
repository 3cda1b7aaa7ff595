package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
	"github.com/rocketscienceinc/tictactoe-despair/internal/replay"
)

const idlePingInterval = 30 * time.Second

type gameController interface {
	Start(mode entity.Mode, difficulty entity.Difficulty) string
	Reset() string
	Stop()
	Place(sessionID string, cell int) error

	Session() entity.GameSession
	HiddenCells() []int
	Twist() string

	ApplyTheme(theme entity.Theme) error
	UpdateSettings(settings entity.Settings) error
	ResetProfile()

	Replay() *replay.Recorder
	PlayReplay()
}

type handlerFunc func(ctx context.Context, client *Client, payload *Payload) error

type Server struct {
	logger     *slog.Logger
	controller gameController
	hub        *Hub
	upgrader   websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, controller gameController, hub *Hub) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		controller: controller,
		hub:        hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameMove] = server.handleMove
	server.handlers[actionGameReset] = server.handleReset
	server.handlers[actionGameLeave] = server.handleLeave
	server.handlers[actionGameState] = server.handleState
	server.handlers[actionThemeApply] = server.handleThemeApply
	server.handlers[actionSettings] = server.handleSettings
	server.handlers[actionStatsReset] = server.handleStatsReset
	server.handlers[actionReplayPlay] = server.handleReplayPlay
	server.handlers[actionReplayNext] = server.handleReplayNext
	server.handlers[actionReplayPrev] = server.handleReplayPrev
	server.handlers[actionReplayPause] = server.handleReplayPause

	return server
}

// ServeHTTP upgrades the connection and serves it until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	client := newClient()
	that.hub.Register(client)

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	client.sendMessage(Message{Action: actionGameState, Payload: mustMarshal(that.snapshot())})

	go func() {
		defer conn.Close()

		if err := writeWithHeartbeat(conn, client.send); err != nil {
			log.Debug("writer stopped", "error", err)
		}
	}()

	that.handleMessages(r.Context(), conn, client)

	that.hub.Unregister(client)
	log.Info("WebSocket connection closed", "remote", r.RemoteAddr)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, client *Client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("stopped reading", "error", err)
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(client, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, message.Action).Error())
			continue
		}

		var payload Payload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
				that.sendError(client, "malformed payload")
				continue
			}
		}

		if err = handler(ctx, client, &payload); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) snapshot() StatePayload {
	return StatePayload{
		Session: that.controller.Session(),
		Hidden:  that.controller.HiddenCells(),
		Twist:   that.controller.Twist(),
	}
}

func (that *Server) sendState(client *Client) {
	client.sendMessage(Message{Action: actionGameState, Payload: mustMarshal(that.snapshot())})
}

func (that *Server) sendError(client *Client, text string) {
	client.sendMessage(Message{Action: actionError, Payload: mustMarshal(ErrorPayload{Error: text})})
}

func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			}

			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}
