package main

import (
	"os"
	"strings"

	"chiptable/internal/config"
	"chiptable/pkg/holdem"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// CLI is the command line of the console
type CLI struct {
	Config       string   `short:"c" help:"Configuration file" env:"HOLDEM_CONFIG_FILE" default:"config.yaml"`
	Players      []string `short:"p" help:"Player names, overrides the configuration"`
	Chips        int      `help:"Starting chips, overrides the configuration"`
	RandomDealer bool     `help:"Pick the first dealer at random"`
	LogLevel     string   `help:"Log level" default:"warn" enum:"debug,info,warn,error"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Keeps the chips, bets, and pots of a Texas Hold'em table"),
	)

	level, _ := logrus.ParseLevel(cli.LogLevel)
	logrus.SetLevel(level)

	ctx.FatalIfErrorf(config.LoadFile(cli.Config))

	opts := cli.tableOptions(config.Instance())
	ctx.FatalIfErrorf(opts.Validate())

	controller, err := holdem.NewController(logrus.StandardLogger(), opts)
	ctx.FatalIfErrorf(err)

	c := newConsole(controller, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
	ctx.FatalIfErrorf(c.run(os.Stdin))
}

func (cli CLI) tableOptions(cfg config.Config) holdem.Options {
	opts := cfg.TableOptions()
	if len(cli.Players) > 0 {
		names := make([]string, len(cli.Players))
		for i, name := range cli.Players {
			names[i] = strings.TrimSpace(name)
		}

		opts.PlayerNames = names
		if opts.DealerSeat >= len(names) {
			opts.DealerSeat = 0
		}
	}

	if cli.Chips > 0 {
		opts.StartingChips = cli.Chips
	}

	if cli.RandomDealer {
		opts.RandomDealer = true
	}

	return opts
}
