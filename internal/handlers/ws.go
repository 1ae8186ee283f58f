package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaronzipp/blobarena/internal/game"
	"github.com/aaronzipp/blobarena/internal/models"
	"github.com/aaronzipp/blobarena/internal/protocol"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 16
)

var upgrader = websocket.Upgrader{
	// The arena has no accounts; any page may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and runs the connection until it closes
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	codec, err := protocol.CodecFor(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("HandleWS: upgrade: %v", err)
		return
	}
	defer conn.Close()

	client := make(chan models.Message, game.ClientBufferSize)
	player := ctx.join(client)
	if debug {
		log.Printf("HandleWS: player %s connected from %s codec=%s", player.ID, r.RemoteAddr, codec.Name())
	}

	done := make(chan struct{})
	go writePump(conn, client, codec, done)

	ctx.readPump(conn, codec, player.ID)
	close(done)
	ctx.leave(client, player.ID)
}

// readPump applies intents from the connection until it errors or closes
func (ctx *Context) readPump(conn *websocket.Conn, codec protocol.Codec, playerID string) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("readPump: player %s: %v", playerID, err)
			}
			return
		}

		env, err := codec.DecodeEnvelope(frame)
		if err != nil {
			log.Printf("readPump: player %s: dropping frame: %v", playerID, err)
			continue
		}

		switch env.Event {
		case protocol.EventMove:
			mv, err := protocol.DecodePayload[protocol.Move](codec, env)
			if err != nil {
				log.Printf("readPump: player %s: bad move payload: %v", playerID, err)
				continue
			}
			if err := ctx.move(playerID, mv); err != nil {
				if errors.Is(err, game.ErrPlayerNotFound) {
					if debug {
						log.Printf("readPump: player %s: move ignored, not in world", playerID)
					}
					continue
				}
				log.Printf("readPump: player %s: dropping move: %v", playerID, err)
			}
		default:
			log.Printf("readPump: player %s: unknown event %q", playerID, env.Event)
		}
	}
}

// writePump drains the client's queue onto the socket and keeps it alive with pings
func writePump(conn *websocket.Conn, client <-chan models.Message, codec protocol.Codec, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	frameType := websocket.TextMessage
	if codec.Binary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-client:
			b, err := codec.Encode(msg.Event, msg.Payload)
			if err != nil {
				log.Printf("writePump: encode %s: %v", msg.Event, err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(frameType, b); err != nil {
				if debug {
					log.Printf("writePump: write %s: %v", msg.Event, err)
				}
				// Unblocks readPump so the player is cleaned up.
				conn.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}
		}
	}
}
