package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
	reqBuffer  = 16
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"` // alert | error
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsAlerts upgrades to a WebSocket on which each inbound alert request is
// answered with the resulting alert or an error envelope.
func (h *Handler) wsAlerts(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	reqs := make(chan wsRequest, reqBuffer)
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, reqs, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case r, ok := <-reqs:
			if !ok {
				return
			}
			if err := h.write(conn, h.handleWSRequest(c, r)); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// wsRequest is a decoded frame or the decode error for it.
type wsRequest struct {
	req alertRequest
	err error
}

// startReader decodes inbound frames until the connection closes.
func (h *Handler) startReader(conn *websocket.Conn, out chan<- wsRequest, stop <-chan struct{}) {
	defer close(out)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var r wsRequest
		r.err = decodeAlertRequest(data, &r.req)
		select {
		case out <- r:
		case <-stop:
			return
		}
	}
}

func (h *Handler) handleWSRequest(c *gin.Context, r wsRequest) wsEnvelope {
	if r.err != nil {
		return errorEnvelope(r.err)
	}
	if err := r.req.validate(); err != nil {
		return wsEnvelope{Type: "error", Error: err.Error()}
	}
	alert, err := h.services.Alerter.CheckAndAlert(c.Request.Context(), *r.req.Target, r.req.battery(), *r.req.TemperatureC)
	if err != nil {
		if h.log != nil {
			h.log.Infow("ws_alert_failed", "err", err, "alert_id", alert.ID)
		}
		return errorEnvelope(err)
	}
	return wsEnvelope{Type: "alert", Data: alert}
}

func errorEnvelope(err error) wsEnvelope {
	_, msg := statusFor(err)
	return wsEnvelope{Type: "error", Error: msg}
}

func (h *Handler) write(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
