package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/calculator"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/model"
)

type Server struct {
	addr     string
	cfg      calculator.Config
	upgrader websocket.Upgrader
}

func NewServer(addr string, cfg calculator.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer. Every connection gets
// its own calculator and hub.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(calculator.NewCalculator(s.cfg), conn)
	defer hub.Close()
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("client gone")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", s.serveWs)
	log.WithField("addr", s.addr).Info("drainage server listening")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.WithError(err).Fatal("ListenAndServe")
	}
}
