package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kiteco/esparse/kite-go/lang/javascript"
	"github.com/kiteco/esparse/kite-golib/envutil"
	"github.com/kiteco/esparse/kite-golib/kitelog"
	"github.com/kiteco/esparse/kite-golib/status"
	"github.com/kiteco/esparse/kite-golib/zaplog"
	"go.uber.org/zap"
)

func main() {
	timeout, err := envutil.GetenvDefaultDuration("JSPARSE_TIMEOUT", javascript.DefaultTimeout)
	if err != nil {
		log.Fatalln(err)
	}

	args := struct {
		Port     string        `arg:"help:address to listen on"`
		Timeout  time.Duration `arg:"help:maximum time spent on a single request"`
		LogLevel string        `arg:"--log-level,help:minimum level to log (debug info warn error)"`
		Origins  []string      `arg:"help:origins allowed to make cross-site requests"`
		Rate     float64       `arg:"help:requests per second allowed on average, 0 for no limit"`
		Burst    int           `arg:"help:requests allowed at once above the rate"`
	}{
		Port:     envutil.GetenvDefault("JSPARSE_PORT", ":9090"),
		Timeout:  timeout,
		LogLevel: envutil.GetenvDefault("JSPARSE_LOG_LEVEL", "info"),
		Burst:    10,
	}
	arg.MustParse(&args)

	logger := zaplog.New(zaplog.ParseLevel(args.LogLevel))
	defer logger.Sync()

	endpoint := javascript.NewEndpoint(args.Timeout).
		WithLogger(&kitelog.Logger{Default: zap.NewStdLog(logger.Named("endpoint"))})

	router := mux.NewRouter()
	router.PathPrefix("/api/").Handler(http.StripPrefix("/api", endpoint))
	router.HandleFunc("/debug/status-json", status.HandlerJSON)

	corsOpts := []handlers.CORSOption{
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
	}
	if len(args.Origins) > 0 {
		corsOpts = append(corsOpts, handlers.AllowedOrigins(args.Origins))
	}
	cors := handlers.CORS(corsOpts...)

	srv := &http.Server{
		Addr:         args.Port,
		Handler:      newHandler(logger.Named("http"), args.Rate, args.Burst, cors(router)),
		ReadTimeout:  args.Timeout,
		WriteTimeout: 2 * args.Timeout,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		logger.Info("shutting down", zap.Stringer("signal", s))

		ctx, cancel := context.WithTimeout(context.Background(), args.Timeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("port", args.Port),
		zap.Duration("timeout", args.Timeout),
		zap.Float64("rate", args.Rate),
		zap.Strings("origins", args.Origins))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server exited", zap.Error(err))
	}
}
