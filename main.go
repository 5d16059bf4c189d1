package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v2"

	"github.com/dataSPA/gist-purge/console"
	"github.com/dataSPA/gist-purge/gist"
	"github.com/dataSPA/gist-purge/purge"
)

const tokenEnv = "GITHUB_TOKEN"

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	if err := newApp(os.Stdout, os.Stdin).Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "gist-purge failed", "err", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer, stdin io.Reader) *cli.App {
	return &cli.App{
		Name:  "gist-purge",
		Usage: "List every gist you own and delete them all after confirmation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "github-token",
				Usage:   "GitHub personal access token with the gist scope",
				EnvVars: []string{tokenEnv},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Value:   gist.DefaultBaseURL,
				Usage:   "GitHub REST API base URL",
				EnvVars: []string{"GITHUB_API_URL"},
			},
			&cli.IntFlag{
				Name:  "per-page",
				Value: gist.DefaultPerPage,
				Usage: "gists requested per page (1-100)",
			},
			&cli.DurationFlag{
				Name:  "delete-delay",
				Value: purge.DefaultDeleteDelay,
				Usage: "pause after every delete request",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: gist.DefaultTimeout,
				Usage: "timeout for each API request",
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "optional YAML config file",
				EnvVars:   []string{"GIST_PURGE_CONFIG"},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
		Action: func(c *cli.Context) error {
			return runPurge(c, console.New(stdout, stdin))
		},
	}
}

func runPurge(c *cli.Context, con *console.Console) error {
	if c.Bool("no-color") {
		con.DisableColor()
	}
	if c.String("github-token") == "" {
		printTokenHelp(con)
		return cli.Exit("", 1)
	}

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	l := logger
	if !cfg.Verbose {
		l = level.NewFilter(l, level.AllowInfo())
	}

	client, err := gist.NewClient(cfg.Token, gist.Options{
		BaseURL:   cfg.APIURL,
		PerPage:   cfg.PerPage,
		Timeout:   cfg.Timeout,
		UserAgent: "gist-purge",
	})
	if err != nil {
		return err
	}
	level.Debug(l).Log("msg", "starting purge", "api", cfg.APIURL, "per_page", cfg.PerPage, "delete_delay", cfg.DeleteDelay)

	p := purge.New(client, con, purge.Options{
		Delay:  cfg.DeleteDelay,
		Logger: l,
	})
	if err := p.Run(c.Context); err != nil {
		// Run has already told the operator what went wrong.
		level.Debug(l).Log("msg", "purge aborted", "err", err)
		return cli.Exit("", 1)
	}
	return nil
}

func printTokenHelp(con *console.Console) {
	con.Error("Error: the %s environment variable is not set", tokenEnv)
	con.Println("Set your GitHub personal access token:")
	con.Println(fmt.Sprintf("Linux/macOS: export %s='your_token'", tokenEnv))
	con.Println(fmt.Sprintf("Windows PowerShell: $env:%s='your_token'", tokenEnv))
	con.Println(fmt.Sprintf("Windows CMD: set %s=your_token", tokenEnv))
}
