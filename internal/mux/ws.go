package mux

import (
	"fmt"
	"net/http"
	"teenpatti-server/internal/config"
	"teenpatti-server/internal/metrics"
	"teenpatti-server/internal/rng"
	"teenpatti-server/pkg/history"
	"teenpatti-server/pkg/teenpatti"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsPayload is an incoming client message
type wsPayload struct {
	Action string   `json:"action"`
	Hand   []string `json:"hand"`
	// Context will be passed back on the outgoing message
	Context string `json:"context"`
}

// wsResponse is an outgoing client message
type wsResponse struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

type wsClient struct {
	conn       *websocket.Conn
	sessionID  string
	remoteAddr string
	send       chan *wsResponse
}

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn:       conn,
			sessionID:  uuid.New().String(),
			remoteAddr: remoteAddr(r),
			send:       make(chan *wsResponse, 64),
		}

		metrics.WebsocketConnected()
		logrus.WithField("session", client.sessionID).
			WithField("remoteAddr", client.remoteAddr).
			Info("websocket session started")

		defer func() {
			metrics.WebsocketDisconnected()
			logrus.WithField("session", client.sessionID).Info("websocket session ended")
			_ = conn.Close()
			close(client.send)
		}()

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(client)
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-client.send:
			if !ok {
				return
			}

			logrus.WithField("session", client.sessionID).WithField("key", msg.Key).Trace("sending message to client")

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithField("session", client.sessionID).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *wsClient) {
	for {
		var payload wsPayload
		if err := client.conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("session", client.sessionID).Error("could not read message")
			}

			return
		}

		if !client.trySend(m.handleWSPayload(client, &payload)) {
			logrus.WithField("session", client.sessionID).Warn("send buffer full, dropping client")
			return
		}
	}
}

// trySend queues the message without blocking
// A full buffer means the client stopped reading, so the caller should drop it.
func (c *wsClient) trySend(msg *wsResponse) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (m *Mux) handleWSPayload(client *wsClient, payload *wsPayload) *wsResponse {
	switch payload.Action {
	case "rank":
		hand, err := teenpatti.ParseHand(payload.Hand)
		if err != nil {
			return wsError(payload, err)
		}

		stats, err := teenpatti.Instance().Stats(hand)
		if err != nil {
			return wsError(payload, err)
		}

		metrics.RecordRankLookup("ws")
		if config.Instance().HistoryEnabled() {
			history.Record(hand, stats, client.remoteAddr)
		}

		return &wsResponse{Key: "stats", Value: stats.Category, Data: stats, Context: payload.Context}
	case "deal":
		hand := teenpatti.Deal(rng.Crypto{})
		stats, err := teenpatti.Instance().Stats(hand)
		if err != nil {
			return wsError(payload, err)
		}

		metrics.RecordRankLookup("ws")
		return &wsResponse{Key: "stats", Value: stats.Category, Data: stats, Context: payload.Context}
	case "deck":
		return &wsResponse{Key: "deck", Data: deckPayload(), Context: payload.Context}
	}

	return wsError(payload, fmt.Errorf("unknown action: %s", payload.Action))
}

func wsError(payload *wsPayload, err error) *wsResponse {
	return &wsResponse{Key: "error", Value: err.Error(), Context: payload.Context}
}
