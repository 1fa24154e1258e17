package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	decomposer "github.com/aouyang1/go-decomposer"
	"github.com/aouyang1/go-decomposer/config"
	"github.com/aouyang1/go-decomposer/server"
	"github.com/aouyang1/go-decomposer/server/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: decomposer <command> [flags]

commands:
  serve    serve the dashboard over http
  render   write the dashboard to an html file
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("decomposer failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return ErrUnknownCommand
	}

	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	envFile := fs.String("env", "", "path to a .env file")
	cpuProfile := fs.Bool("cpuprofile", false, "write a cpu profile to -profiledir")
	profileDir := fs.String("profiledir", ".", "directory for the cpu profile")
	out := fs.String("out", "decomposition.html", "output html file for render")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("unable to load config, %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if *cpuProfile {
		// serve handles SIGINT itself and must shut down before the profile is flushed
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	}

	dec, err := decomposer.New(cfg.Options)
	if err != nil {
		return err
	}

	switch cmd {
	case "serve":
		return serve(cfg, dec)
	case "render":
		return render(dec, *out)
	}
	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("%q, %w", cmd, ErrUnknownCommand)
}

func serve(cfg *config.Config, dec *decomposer.Decomposer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	muxRouter := mux.NewRouter()
	router := server.NewRouter(handlers.NewDashboardHandler(dec), muxRouter)
	srv := server.NewDecomposerHttpServer(cfg.Addr, cfg.ShutdownTimeout, router, muxRouter)
	return srv.Start(ctx)
}

func render(dec *decomposer.Decomposer, path string) error {
	res, err := dec.RenderFile(path)
	if err != nil {
		return fmt.Errorf("unable to render dashboard, %w", err)
	}
	slog.Info("dashboard written", "path", path)

	if err := dec.Options().DecomposeOptions.TablePrint(os.Stderr, "", "  ", 0); err != nil {
		return err
	}
	return res.Summary.TablePrint(os.Stderr, "", "  ", 0)
}
