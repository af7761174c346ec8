package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chiptable/pkg/action"
	"chiptable/pkg/holdem"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	focusStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

const helpText = `commands:
  fold | check | call | allin     act for the player with the turn
  bet N | raise N                 wager N chips
  next                            pass the turn without acting
  round                           close the betting round
  match                           start the next match
  dealer N                        give seat N the dealer button
  sitout N | back N               take seat N out of the next matches, or back in
  pay S[,S][;S...]                pay the pots, best tier first, ties separated by commas
  state | log | help | quit
`

var errQuit = errors.New("quit")

type console struct {
	controller  *holdem.Controller
	out         io.Writer
	interactive bool
}

func newConsole(controller *holdem.Controller, out io.Writer, interactive bool) *console {
	return &console{
		controller:  controller,
		out:         out,
		interactive: interactive,
	}
}

// run reads one command per line until quit or the end of input
func (c *console) run(in io.Reader) error {
	c.printState()

	scanner := bufio.NewScanner(in)
	for {
		if c.interactive {
			_, _ = fmt.Fprint(c.out, "> ")
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		err := c.execute(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			_, _ = fmt.Fprintln(c.out, errorStyle.Render(err.Error()))
		}
	}
}

func (c *console) execute(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		_, _ = fmt.Fprint(c.out, helpText)
		return nil
	case "state", "s":
		c.printState()
		return nil
	case "log":
		c.printLog()
		return nil
	}

	if err := c.command(cmd, args); err != nil {
		return err
	}

	c.printState()
	return nil
}

func (c *console) command(cmd string, args []string) error {
	switch cmd {
	case "next":
		return c.controller.AdvanceTurn()
	case "round":
		return c.controller.InitiateNewRound()
	case "match":
		return c.controller.InitiateNewMatch()
	case "dealer":
		seat, err := intArg(args)
		if err != nil {
			return err
		}

		return c.controller.SetDealer(seat)
	case "sitout", "back":
		seat, err := intArg(args)
		if err != nil {
			return err
		}

		return c.controller.SitOut(seat, cmd == "sitout")
	case "pay":
		if len(args) != 1 {
			return errors.New("usage: pay S[,S][;S...]")
		}

		tiers, err := parseTiers(args[0])
		if err != nil {
			return err
		}

		payouts, err := c.controller.PayWinners(tiers)
		if err != nil {
			return err
		}

		for _, tier := range tiers {
			for _, seat := range tier {
				if amount, ok := payouts[seat]; ok {
					_, _ = fmt.Fprintf(c.out, "seat %d wins %d\n", seat, amount)
				}
			}
		}

		return nil
	}

	act, err := action.FromString(cmd)
	if err != nil {
		return fmt.Errorf("unknown command: %s", cmd)
	}

	focus := c.controller.Focus()
	if focus == nil {
		return holdem.ErrNoFocus
	}

	amount := 0
	if act.NeedsAmount() {
		if amount, err = intArg(args); err != nil {
			return err
		}
	}

	return c.controller.Dispatch(focus.Seat(), act, amount)
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a single number")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}

	return n, nil
}

// parseTiers reads "1,2;3" as [[1 2] [3]]
func parseTiers(s string) ([][]int, error) {
	tiers := make([][]int, 0)
	for _, group := range strings.Split(s, ";") {
		if group == "" {
			continue
		}

		tier := make([]int, 0)
		for _, seatStr := range strings.Split(group, ",") {
			seat, err := strconv.Atoi(strings.TrimSpace(seatStr))
			if err != nil {
				return nil, fmt.Errorf("not a seat: %s", seatStr)
			}

			tier = append(tier, seat)
		}

		tiers = append(tiers, tier)
	}

	if len(tiers) == 0 {
		return nil, errors.New("no winners given")
	}

	return tiers, nil
}

func (c *console) printState() {
	state := c.controller.State()

	_, _ = fmt.Fprintln(c.out, titleStyle.Render(fmt.Sprintf("match %d, %s, highest bet %d", state.Match, state.Round, state.HighestBet)))
	for _, p := range state.Players {
		marker := " "
		if p.IsDealer {
			marker = "D"
		}

		line := fmt.Sprintf("%s %2d %-16s %-14s balance %6d  bet %6d", marker, p.Seat, p.Name, p.Status, p.Balance, p.CurrentBet)
		if p.HasFocus {
			line = focusStyle.Render(line + "  <")
		}

		_, _ = fmt.Fprintln(c.out, line)
	}

	for i, pot := range state.Pots {
		_, _ = fmt.Fprintf(c.out, "pot %d: %d %v\n", i, pot.Amount, pot.Eligible)
	}
}

func (c *console) printLog() {
	for _, msg := range c.controller.Log() {
		_, _ = fmt.Fprintf(c.out, "%s  %s\n", msg.Time.Format("15:04:05"), msg.Message)
	}
}
