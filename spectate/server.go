package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/parameter"
)

// Server broadcasts snapshot frames to read-only websocket spectators
// Spectators never send input; anything they write is read and discarded
type Server struct {
	logger   *slog.Logger
	cors     *cors.Cors
	upgrader websocket.Upgrader
	limiter  *rate.Limiter

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool
}

// client is one spectator connection with its bounded frame queue
type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewServer creates a server; an empty origin list allows any origin
func NewServer(allowedOrigins []string, fps float64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if fps <= 0 {
		fps = parameter.SpectateFPS
	}
	s := &Server{
		logger: logger.With("component", "spectate"),
		cors: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}),
		limiter: rate.NewLimiter(rate.Limit(fps), 1),
		clients: make(map[*client]struct{}),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// Non-browser clients send no Origin
			if r.Header.Get("Origin") == "" {
				return true
			}
			return s.cors.OriginAllowed(r)
		},
	}
	return s
}

// Handler serves the websocket endpoint behind the CORS policy
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(parameter.SpectatePath, s.cors.Handler(http.HandlerFunc(s.serveWS)))
	return mux
}

// Publish encodes a snapshot and queues it for every spectator
// Frames beyond the configured rate are skipped; returns whether the frame went out
func (s *Server) Publish(snap *engine.Snapshot) bool {
	if !s.limiter.Allow() {
		return false
	}

	data, err := json.Marshal(NewFrame(snap))
	if err != nil {
		s.logger.Error("frame encode failed", "tick", snap.Tick, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.last = data
	for c := range s.clients {
		c.enqueue(data)
	}
	return true
}

// Clients is the number of connected spectators
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close disconnects every spectator and refuses new ones
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		s.drop(c)
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: parameter.SpectateReadHeaderTimeout,
	}
}

// Serve accepts on ln until ctx is cancelled, then shuts down and closes spectators
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := s.httpServer()

	errc := make(chan error, 1)
	core.Go(func() { errc <- srv.Serve(ln) })
	s.logger.Info("spectate listening", "addr", ln.Addr().String(), "path", parameter.SpectatePath)

	select {
	case <-ctx.Done():
		// Hijacked websocket connections are not tracked by Shutdown
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.SpectateShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("spectate shutdown", "error", err)
		}
		<-errc
		return nil
	case err := <-errc:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, parameter.SpectateBuffer),
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	if s.last != nil {
		c.enqueue(s.last)
	}
	n := len(s.clients)
	s.mu.Unlock()

	s.logger.Info("spectator joined", "remote", r.RemoteAddr, "clients", n)

	core.Go(func() { s.writeLoop(c) })
	s.readLoop(c)
}

// readLoop discards input and detects disconnect
func (s *Server) readLoop(c *client) {
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			s.drop(c)
			return
		}
	}
}

// writeLoop sends queued frames; a stalled socket hits the write deadline and is dropped
func (s *Server) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Debug("spectator write failed", "error", err)
				s.drop(c)
				return
			}
		}
	}
}

// drop removes a client once; safe from any goroutine
func (s *Server) drop(c *client) {
	c.once.Do(func() {
		s.mu.Lock()
		delete(s.clients, c)
		n := len(s.clients)
		s.mu.Unlock()

		close(c.done)
		deadline := time.Now().Add(time.Second)
		c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), deadline)
		c.conn.Close()
		s.logger.Info("spectator left", "clients", n)
	})
}

// enqueue queues a frame, evicting the oldest when full; callers hold the server lock
func (c *client) enqueue(frame []byte) {
	for {
		select {
		case c.send <- frame:
			return
		default:
		}
		select {
		case <-c.send:
		default:
		}
	}
}
