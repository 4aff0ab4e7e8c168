package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/calculator"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/console"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	mode := flag.String("mode", "console", "run mode: console or server")
	addr := flag.String("addr", "", "websocket listen address, overrides the config file")
	confPath := flag.String("conf", "conf/config.ini", "path to the config file")
	out := flag.String("out", "", "figure output directory, overrides the config file")
	flag.Parse()

	cfg := calculator.LoadConfig(*confPath)
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *out != "" {
		cfg.OutDir = *out
	}

	switch *mode {
	case "console":
		if err := console.Run(cfg, os.Stdin, os.Stdout); err != nil {
			log.WithError(err).Fatal("session failed")
		}
	case "server":
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(cfg.Addr, cfg, upgrader)
		s.Serve()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
