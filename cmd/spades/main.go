package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"spades/internal/app"
	"spades/internal/bot"
	"spades/internal/config"
	"spades/internal/domain"
)

const version = "v1.0.0"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		difficulty  = flag.String("difficulty", "", "Bot difficulty: easy, medium, hard")
		configPath  = flag.String("config", "", "Path to game config JSON")
		botsPath    = flag.String("bots", "", "Path to bot identities JSON")
		noDelay     = flag.Bool("no-delay", false, "Skip artificial bot think delays")
		seed        = flag.Int64("seed", 0, "Seed for the deal and bot RNG (0 = time-based)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`Spades - play a game of spades against three bots

Usage: %s [options]

Options:
  -h, --help          Show this help message
  -v, --version       Show version information
  --difficulty LEVEL  Bot difficulty: easy, medium, hard (default: medium)
  --config PATH       Path to game config JSON
  --bots PATH         Path to bot identities JSON
  --no-delay          Skip artificial bot think delays
  --seed N            Seed for the deal and bot RNG (0 = time-based)

In-game commands:
  bid N       bid N tricks (1-13)
  nil         bid nil
  blind       declare blind nil (only before the deal)
  play CARD   play a card by id, e.g. "play HA" or "play S10"
  hint        ask for a suggested bid or card
  hand        print your hand again
  score       print the score
  quit        leave the game
`, os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("Spades %s\n", version)
		return
	}

	// zerolog setup (human-friendly console, warnings only by default so
	// the table rendering stays readable)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw).Level(zerolog.WarnLevel)

	if *configPath != "" {
		if err := config.LoadGameConfig(*configPath); err != nil {
			zerologlog.Fatal().Err(err).Msg("config load failed")
		}
		if cfg := config.GetGameConfig(); cfg != nil && cfg.LogLevel != "" {
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerologlog.Logger = zerologlog.Logger.Level(lvl)
			}
		}
	}
	identitiesPath := *botsPath
	if identitiesPath == "" {
		if cfg := config.GetGameConfig(); cfg != nil {
			identitiesPath = cfg.BotIdentitiesPath
		}
	}
	if identitiesPath != "" {
		if err := bot.LoadIdentities(identitiesPath); err != nil {
			zerologlog.Warn().Err(err).Msg("bot identities unavailable, using defaults")
		}
	}

	level := *difficulty
	if level == "" {
		level = config.DefaultDifficulty()
	}
	parsed, err := bot.ParseLevel(level)
	if err != nil {
		zerologlog.Fatal().Err(err).Msg("bad difficulty")
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	delays := !*noDelay && config.ThinkDelayEnabled()

	cli := &cli{
		svc:    app.NewService(rng),
		rng:    rng,
		in:     bufio.NewScanner(os.Stdin),
		level:  parsed,
		delays: delays,
	}
	if err := cli.run(); err != nil {
		zerologlog.Fatal().Err(err).Msg("game aborted")
	}
}

type cli struct {
	svc    *app.Service
	rng    *rand.Rand
	in     *bufio.Scanner
	level  bot.Level
	delays bool
	game   *domain.Game
}

var errQuit = fmt.Errorf("quit")

func (c *cli) run() error {
	game, events, err := c.svc.NewGame(c.level)
	if err != nil {
		return err
	}
	c.game = game
	c.render(events)

	fmt.Printf("Playing to %d points against %s bots. Opponents: %s (west), %s (east); partner: %s.\n",
		config.WinScore(), c.level,
		game.PlayerAt(domain.West).Name, game.PlayerAt(domain.East).Name,
		game.PlayerAt(domain.North).Name)

	for game.Phase != domain.PhaseGameOver {
		switch game.Phase {
		case domain.PhaseDealing:
			if err := c.preDeal(); err != nil {
				return c.finish(err)
			}
		case domain.PhaseBidding, domain.PhasePlaying:
			if err := c.turn(); err != nil {
				return c.finish(err)
			}
		case domain.PhaseRoundEnd:
			c.printScore()
			events, err := c.svc.NextRound(game)
			if err != nil {
				return err
			}
			c.render(events)
		default:
			return fmt.Errorf("unexpected phase %q", game.Phase)
		}
	}

	fmt.Printf("\nGame over! %s wins.\n", teamLabel(*game.Winner))
	c.printScore()
	return nil
}

func (c *cli) finish(err error) error {
	if err == errQuit {
		fmt.Println("Thanks for playing.")
		return nil
	}
	return err
}

// preDeal offers the blind nil window, then deals.
func (c *cli) preDeal() error {
	fmt.Printf("\n--- Round %d ---\n", c.game.Round.Number)
	fmt.Print("Declare blind nil before the deal? (y/N) ")
	if !c.in.Scan() {
		return errQuit
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	if answer == "y" || answer == "yes" {
		events, err := c.svc.DeclareBlindNil(c.game, domain.South)
		if err != nil {
			return err
		}
		c.render(events)
	}
	events, err := c.svc.DealRound(c.game)
	if err != nil {
		return err
	}
	c.render(events)
	return nil
}

// turn dispatches the current seat: prompt the human, or let the bot act
// after its think delay.
func (c *cli) turn() error {
	game := c.game
	if game.PlayerAt(game.Current).IsHuman {
		if game.Phase == domain.PhaseBidding {
			return c.humanBid()
		}
		return c.humanPlay()
	}

	if c.delays {
		time.Sleep(c.level.ThinkDelay(c.rng))
	}
	events, err := c.svc.BotTurn(game, game.ID)
	if err != nil {
		return err
	}
	c.render(events)
	return nil
}

func (c *cli) humanBid() error {
	c.printHand()
	for {
		fmt.Print("Your bid (bid N | nil | hint | hand | score | quit): ")
		if !c.in.Scan() {
			return errQuit
		}
		fields := strings.Fields(strings.ToLower(c.in.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return errQuit
		case "hand":
			c.printHand()
		case "score":
			c.printScore()
		case "hint":
			hint, err := c.svc.HintBid(c.game)
			if err != nil {
				return err
			}
			if hint.IsNil() {
				fmt.Println("Suggestion: nil")
			} else {
				fmt.Printf("Suggestion: bid %d\n", hint.Tricks)
			}
		case "nil":
			return c.placeBid(domain.NilBid())
		case "bid":
			if len(fields) < 2 {
				fmt.Println("Usage: bid N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > 13 {
				fmt.Println("Bids run from 1 to 13.")
				continue
			}
			return c.placeBid(domain.StandardBid(n))
		default:
			fmt.Println("Unknown command.")
		}
	}
}

func (c *cli) placeBid(bid domain.Bid) error {
	events, err := c.svc.PlaceBid(c.game, domain.South, bid)
	if err != nil {
		fmt.Printf("Rejected: %v\n", err)
		return c.humanBid()
	}
	c.render(events)
	return nil
}

func (c *cli) humanPlay() error {
	c.printTrick()
	c.printHand()
	for {
		fmt.Print("Your play (play CARD | hint | hand | score | quit): ")
		if !c.in.Scan() {
			return errQuit
		}
		fields := strings.Fields(strings.ToUpper(c.in.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "QUIT":
			return errQuit
		case "HAND":
			c.printHand()
		case "SCORE":
			c.printScore()
		case "HINT":
			hint, err := c.svc.HintCard(c.game)
			if err != nil {
				return err
			}
			fmt.Printf("Suggestion: %s\n", hint.ID())
		case "PLAY":
			if len(fields) < 2 {
				fmt.Println("Usage: play CARD (e.g. play HA)")
				continue
			}
			card, ok := findCard(c.game.PlayerAt(domain.South).Hand, fields[1])
			if !ok {
				fmt.Println("You don't hold that card.")
				continue
			}
			events, err := c.svc.PlayCard(c.game, domain.South, card)
			if err != nil {
				fmt.Printf("Rejected: %v\n", err)
				continue
			}
			c.render(events)
			return nil
		default:
			fmt.Println("Unknown command.")
		}
	}
}

// render prints the player-facing narration for each event.
func (c *cli) render(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.BlindNilDeclaredPayload:
			fmt.Printf("%s declares BLIND NIL!\n", c.seatLabel(p.Seat))
		case app.BidPlacedPayload:
			if p.Bid.IsNil() {
				fmt.Printf("%s bids nil.\n", c.seatLabel(p.Seat))
			} else {
				fmt.Printf("%s bids %d.\n", c.seatLabel(p.Seat), p.Bid.Tricks)
			}
		case app.BiddingCompletePayload:
			fmt.Printf("Bidding complete. %s leads.\n", c.seatLabel(p.Lead))
		case app.CardPlayedPayload:
			fmt.Printf("%s plays %s.\n", c.seatLabel(p.Seat), p.Card.ID())
		case app.TrickWonPayload:
			fmt.Printf("%s takes the trick.\n", c.seatLabel(p.Winner))
		case app.RoundScoredPayload:
			fmt.Printf("\nRound %d scored:\n", p.Round)
			printResult("North/South (you)", p.NorthSouth)
			printResult("East/West", p.EastWest)
		case app.NewRoundPayload:
			fmt.Printf("Round %d, %s deals.\n", p.Round, c.seatLabel(p.Dealer))
		case app.GameEndedPayload:
			// Final banner printed by run.
		default:
			switch ev.Kind {
			case app.EventSpadesBroken:
				fmt.Println("Spades are broken!")
			}
		}
	}
}

func printResult(label string, res domain.RoundResult) {
	made := "set"
	if res.Made {
		made = "made"
	}
	fmt.Printf("  %s: bid %d, took %d (%s) -> %+d points, %d bag(s)\n",
		label, res.TeamBid, res.TeamTricks, made, res.Points, res.Overtricks)
	if res.BagPenalty {
		fmt.Printf("  %s: bag penalty! -%d\n", label, domain.BagPenaltyPoints)
	}
}

func (c *cli) printHand() {
	hand := c.game.PlayerAt(domain.South).Hand
	ids := make([]string, len(hand))
	for i, card := range hand {
		ids[i] = card.ID()
	}
	fmt.Printf("Your hand: %s\n", strings.Join(ids, " "))
}

func (c *cli) printTrick() {
	trick := c.game.Round.Current
	if trick == nil || len(trick.Plays) == 0 {
		fmt.Println("You lead the trick.")
		return
	}
	parts := make([]string, len(trick.Plays))
	for i, play := range trick.Plays {
		parts[i] = fmt.Sprintf("%s:%s", c.seatLabel(play.Seat), play.Card.ID())
	}
	fmt.Printf("On the table: %s\n", strings.Join(parts, "  "))
}

func (c *cli) printScore() {
	ns := c.game.Scores[domain.TeamNorthSouth]
	ew := c.game.Scores[domain.TeamEastWest]
	fmt.Printf("Score: North/South (you) %d (%d bags) - East/West %d (%d bags)\n",
		ns.Score, ns.Bags, ew.Score, ew.Bags)
}

func (c *cli) seatLabel(seat domain.Seat) string {
	p := c.game.PlayerAt(seat)
	if p.IsHuman {
		return "You"
	}
	return fmt.Sprintf("%s (%s)", p.Name, seat)
}

func teamLabel(team domain.Team) string {
	if team == domain.TeamNorthSouth {
		return "North/South (you)"
	}
	return "East/West"
}

func findCard(hand []domain.Card, id string) (domain.Card, bool) {
	for _, card := range hand {
		if card.ID() == id {
			return card, true
		}
	}
	return domain.Card{}, false
}
