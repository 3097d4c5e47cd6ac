package sender

import (
	"context"
	"encoding/json"
	"livebets/parse_bovada/internal/entity"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Sender mirrors every refreshed snapshot to websocket clients connected on
// /output. Purely a local convenience: nobody has to be connected and the
// poll loop never waits on a client.
type Sender struct {
	clientConns    map[*websocket.Conn]bool
	clientConnsMux sync.Mutex
	sendChan       <-chan entity.Snapshot
	upgrader       websocket.Upgrader
	logger         *zerolog.Logger
}

func New(sendChan <-chan entity.Snapshot, logger *zerolog.Logger) *Sender {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return &Sender{
		clientConns: make(map[*websocket.Conn]bool),
		sendChan:    sendChan,
		upgrader:    upgrader,
		logger:      logger,
	}
}

func (s *Sender) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case snapshot := <-s.sendChan:
			byteMsg, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				s.logger.Error().Err(err).Msg("[Sender.Run] error marshal snapshot")
				continue
			}

			s.sendingToClients(byteMsg)

		case <-ctx.Done():
			s.clientConnsMux.Lock()
			for conn := range s.clientConns {
				conn.Close()
				delete(s.clientConns, conn)
			}
			s.clientConnsMux.Unlock()
			return
		}
	}
}

func (s *Sender) HandleClientConn(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("[Sender.HandleClientConn] error upgrade to websocket")
		return
	}

	s.clientConnsMux.Lock()
	s.clientConns[conn] = true
	s.clientConnsMux.Unlock()

	s.logger.Info().Msgf("new client connected: %s", conn.RemoteAddr())

	go func() {
		defer func() {
			s.clientConnsMux.Lock()
			delete(s.clientConns, conn)
			s.clientConnsMux.Unlock()
			conn.Close()
			s.logger.Info().Msgf("client disconnected: %s", conn.RemoteAddr())
		}()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					s.logger.Error().Err(err).Msg("[Sender.HandleClientConn] error read from client")
				}
				return
			}
		}
	}()
}

func (s *Sender) sendingToClients(byteMsg []byte) {
	s.clientConnsMux.Lock()
	defer s.clientConnsMux.Unlock()

	for conn := range s.clientConns {
		if err := conn.WriteMessage(websocket.TextMessage, byteMsg); err != nil {
			s.logger.Error().Err(err).Msgf("[Sender.sendingToClients] error send to client (%v)", conn.RemoteAddr())
			conn.Close()
			delete(s.clientConns, conn)
		}
	}
}
