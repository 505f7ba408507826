package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/hotseat/pkg"
)

var (
	listenAddress   string
	chesstermBinary string
	hostKeyPath     string
	logPath         string

	done = make(chan bool)
)

func init() {
	flag.StringVar(&listenAddress, "listen", pkg.SshPort, "host SSH server on network address")
	flag.StringVar(&chesstermBinary, "chessterm", "", "path to chessterm binary")
	flag.StringVar(&hostKeyPath, "hostkey", "", "path to PEM host key, generated when empty")
	flag.StringVar(&logPath, "log", "", "path to log file, stderr when empty")
}

func main() {
	flag.Parse()

	if logPath != "" {
		pkg.InitLog(logPath, "SERVER: ")
	}

	s, err := pkg.NewServer(listenAddress, chesstermBinary, hostKeyPath)
	if err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	go func() {
		log.Printf("Listening at %s", listenAddress)
		if err := s.ListenAndServe(); err != nil {
			log.Printf("server stopped: %s", err)
		}

		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	if err := s.Close(); err != nil {
		log.Printf("failed to close server: %s", err)
	}
}
