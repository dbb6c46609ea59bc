package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"slicecam/config"
	"slicecam/leaderboard"
	"slicecam/logging"
	"slicecam/network"
	"slicecam/pose"
	"slicecam/room"
)

func main() {
	var (
		addr    string
		logFile string
		tunPath string
	)
	flag.StringVar(&addr, "addr", ":8080", "server listen address, e.g. :8080")
	flag.StringVar(&logFile, "log", "slicecam.log", "log file path")
	flag.StringVar(&tunPath, "tuning", "", "optional YAML tuning override file")
	flag.Parse()

	config.InitEnv()
	if err := logging.InitLogger(logFile); err != nil {
		panic(err)
	}
	defer logging.Sync()

	tun, err := config.LoadTuning(tunPath)
	if err != nil {
		logging.Log.Fatalf("tuning: %v", err)
	}

	var scorer pose.Scorer = pose.Stub{}
	if url := config.EnvOr("POSE_SCORER_URL", ""); url != "" {
		scorer = pose.NewHTTPScorer(url)
		logging.Log.Infof("pose scorer: %s", url)
	}

	board, err := leaderboard.Open("slicecam")
	if err != nil {
		logging.Log.Warnf("leaderboard store unavailable, scores stay in memory: %v", err)
	}

	rooms := room.NewManager(tun, scorer, board)
	api := &network.Server{Rooms: rooms, Board: board}

	mux := http.NewServeMux()
	api.Register(mux)
	// The capture/render client is a static page.
	mux.Handle("/", http.FileServer(http.Dir("web")))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logging.Log.Infof("slicecam listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Log.Info("shutting down")
	_ = srv.Close()
}
