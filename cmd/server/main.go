package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	log "github.com/jeanphorn/log4go"

	"github.com/qnkhuat/tetristerm/pkg/logging"
	"github.com/qnkhuat/tetristerm/pkg/ssh"
)

var (
	done = make(chan bool)
)

func main() {
	listen := flag.String("listen", ssh.DefaultAddress, "address to accept SSH sessions on")
	binary := flag.String("tetristerm", "", "path to the tetristerm client")
	clientArgs := flag.String("args", "", "extra arguments passed to every client, space separated")
	hostKey := flag.String("host-key", "", "path to the SSH host key (default ~/.ssh/id_rsa)")
	idle := flag.Duration("idle", ssh.ServerIdleTimeout, "disconnect idle sessions after")
	logPath := flag.String("log", "./server.log", "path to log file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	if err := logging.Init(*logPath, "SERVER: ", *logLevel); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
	defer log.Close()

	server := &ssh.Server{
		ListenAddress: *listen,
		Binary:        *binary,
		Args:          strings.Fields(*clientArgs),
		HostKeyFile:   *hostKey,
		IdleTimeout:   *idle,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Error("Server stopped: %s", err)
			color.Red("%s", err)
		}
		done <- true
	}()
	color.Green("Listening on %s", *listen)

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warn("Shutdown: %s", err)
	}
	log.Info("Server stopped with %d sessions open", len(server.Sessions()))
}
