package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/calculator"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/model"
)

// Hub routes messages between one websocket client and its calculator.
// handleRequest validates and classifies client messages; handleResponse is
// the only goroutine writing to the connection.
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn

	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg

	done chan struct{}
}

func NewHub(c calculator.Calculator, conn *websocket.Conn) *Hub {
	return &Hub{
		c:       c,
		conn:    conn,
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func (h *Hub) Close() {
	close(h.done)
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				reply := model.Msg{Type: "envSet", Content: "env is set"}
				if err := h.applyEnv(msg.Content); err != nil {
					reply.Type = "error"
					reply.Content = err.Error()
				}
				h.envSet <- reply
			case "start":
				h.started <- model.Msg{Type: "started"}
			case "stop":
				h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
			default:
				log.WithField("type", msg.Type).Warn("no such message type")
			}
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.envSet:
			h.write(reply)
		case reply := <-h.started:
			h.c.GetCalcHub().StartSignal()
			if err := h.c.Run(); err != nil {
				h.write(model.Msg{Type: "error", Content: err.Error()})
				continue
			}
			<-h.c.GetCalcHub().PeriodCalcResult
			data, err := json.Marshal(h.c.BuildData())
			if err != nil {
				h.write(model.Msg{Type: "error", Content: err.Error()})
				continue
			}
			reply.Content = string(data)
			h.write(reply)
		case reply := <-h.stopped:
			h.c.GetCalcHub().StopSignal()
			h.write(reply)
		}
	}
}

// applyEnv decodes the client's simulation request and configures the
// calculator from it.
func (h *Hub) applyEnv(content string) error {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return fmt.Errorf("decoding env: %w", err)
	}
	technique, err := foam.ParseTechnique(env.Technique)
	if err != nil {
		return err
	}
	if err := h.c.InitFormulation(technique, env.GasRatio); err != nil {
		return err
	}
	if env.SyringeVolume != 0 {
		if err := h.c.SetSyringe(env.SyringeVolume); err != nil {
			return err
		}
	}
	if err := h.c.SetFlowrates(env.Flowrates); err != nil {
		return err
	}
	return h.c.SetFoamVolumes(env.FoamVolumes)
}

func (h *Hub) write(msg model.Msg) {
	if err := h.conn.WriteJSON(&msg); err != nil {
		log.WithError(err).Error("writing to client")
	}
}
