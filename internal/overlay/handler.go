package overlay

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/logger"
	"github.com/ziadkadry99/learnhub/internal/modal"
)

const maxMessageBytes = 64 << 10

// Handler upgrades /ws/overlay requests and runs one Session per connection.
type Handler struct {
	clock     clockwork.Clock
	responder modal.Responder
	cfg       Config
	recorder  diagnostics.Recorder
	log       *logger.Logger
	upgrader  websocket.Upgrader
}

// HandlerOptions configures a Handler. Only Responder is required.
type HandlerOptions struct {
	Clock     clockwork.Clock
	Responder modal.Responder
	Config    Config
	Recorder  diagnostics.Recorder
	Logger    *logger.Logger
	// AllowAllOrigins disables the same-origin check on the upgrade.
	AllowAllOrigins bool
}

// NewHandler creates a websocket handler.
func NewHandler(opts HandlerOptions) *Handler {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	h := &Handler{
		clock:     opts.Clock,
		responder: opts.Responder,
		cfg:       opts.Config,
		recorder:  opts.Recorder,
		log:       opts.Logger,
	}
	if opts.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// RegisterRoutes mounts the overlay websocket on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/ws/overlay", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("overlay websocket upgrade", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	sess := NewSession(h.clock, &connSink{conn: conn}, h.responder, h.cfg, h.recorder, h.log)
	defer sess.Dispose()
	h.log.Debug("overlay session started", "session_id", sess.ID())
	sess.Start()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("overlay websocket read", "session_id", sess.ID(), "error", err)
			}
			h.log.Debug("overlay session ended", "session_id", sess.ID())
			return
		}

		var msg Inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.SendError("invalid message format")
			continue
		}

		if err := sess.Handle(msg); err != nil {
			if errors.Is(err, ErrUnknownType) {
				sess.SendError("unknown message type: " + msg.Type)
				continue
			}
			sess.SendError(err.Error())
		}
	}
}

// connSink writes JSON messages to a websocket connection. The session
// serialises calls to Send.
type connSink struct {
	conn *websocket.Conn
}

func (c *connSink) Send(msg any) error {
	return c.conn.WriteJSON(msg)
}
