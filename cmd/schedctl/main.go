package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"music-scheduler/internal/client"
	"music-scheduler/internal/startup"
)

const defaultTimeout = 30 * time.Second

func main() {
	// Optional; SCHEDCTL_SERVER may live there.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:    "schedctl",
		Usage:   "control a music scheduler server",
		Version: startup.Version,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "scheduler base URL",
				Value:   client.DefaultServer,
				EnvVars: []string{"SCHEDCTL_SERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout",
				Value: defaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print raw JSON instead of tables",
			},
		},
		Commands: []*cli.Command{
			songsCommand(),
			schedulesCommand(),
			playerCommand(),
			{
				Name:  "health",
				Usage: "show server health",
				Action: func(c *cli.Context) error {
					health, err := apiClient(c).Health(c.Context)
					if err != nil {
						return err
					}
					return output(c, health, func(w io.Writer) { printHealth(w, health) })
				},
			},
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("server"), &http.Client{Timeout: c.Duration("timeout")})
}
