//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const usage = `Usage: sportpools-optimizer -f <forecast.html> [flags]

Optimise your Sportpools player selection from a saved Tennis Abstract
draw forecast page, or from a prepared candidate JSON file.

Flags:
`

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// output is the JSON-serializable result of a run.
type output struct {
	Squad      []outputPlayer    `json:"squad"`
	TotalScore float64           `json:"totalScore"`
	TotalBlack int               `json:"totalBlack"`
	Budget     int               `json:"budget"`
	Jokers     []JokerSuggestion `json:"jokers"`
}

type outputPlayer struct {
	Name   string  `json:"name"`
	Seed   int     `json:"seed,omitempty"`
	Black  int     `json:"black"`
	Rounds int     `json:"rounds,omitempty"`
	Score  float64 `json:"score"`
	Loser  bool    `json:"loser,omitempty"`
}

func main() {
	var (
		file     string
		jsonPath string
		loser    string
		format   string
		budget   int
		count    int
		verbose  bool
	)
	pflag.StringVarP(&file, "file", "f", "", "path to a saved draw forecast page")
	pflag.StringVar(&jsonPath, "json", "", "path to a candidate JSON file (instead of --file)")
	pflag.IntVarP(&budget, "black-points", "b", 20, "total number of black points to use")
	pflag.IntVarP(&count, "count", "c", 14, "number of players to select")
	pflag.StringVarP(&loser, "loser", "l", "", "pre-designated loser pick")
	pflag.StringVar(&format, "output", "table", "output format: table or json")
	pflag.BoolVar(&verbose, "verbose", false, "print debug logging to stderr")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	log := newLogger(verbose)

	if file == "" && jsonPath == "" {
		pflag.Usage()
		os.Exit(1)
	}

	cfg := DefaultScoreConfig()

	var (
		players []Player
		err     error
	)
	if jsonPath != "" {
		log.WithField("file", jsonPath).Info("Loading candidates")
		players, err = loadCandidates(jsonPath)
	} else {
		log.WithField("file", file).Info("Loading forecast")
		players, err = loadForecast(file)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("players", len(players)).Info("Candidate pool ready")

	applyScores(players, cfg)

	// Pre-scored JSON input carries no round odds, so there is no draw to play.
	hasOdds := false
	for i := range players {
		if players[i].Odds != nil {
			hasOdds = true
			break
		}
	}
	if hasOdds {
		log.Info("Emulating the draw")
		draw := applyDraw(players)
		if draw.Champion >= 0 {
			log.WithField("champion", players[draw.Champion].Name).Info("Emulated title run")
		}
	}

	log.WithFields(logrus.Fields{"count": count, "budget": budget}).Info("Optimising selection")
	sel, err := NewSelector(players, count, budget, loser, cfg).Select()
	if err != nil {
		log.Fatal(err)
	}

	jokers := jokerSuggestions(players, cfg, 5)

	if format == "json" {
		out := output{
			TotalScore: sel.TotalScore,
			TotalBlack: sel.TotalBlack,
			Budget:     budget,
			Jokers:     jokers,
		}
		for _, p := range sel.Squad {
			out.Squad = append(out.Squad, outputPlayer{
				Name: p.Name, Seed: p.Seed, Black: p.Black,
				Rounds: p.Rounds, Score: p.Score, Loser: p.Loser,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else {
		fmt.Println(formatSquad(sel, budget))
		fmt.Println(formatJokers(jokers))
	}

	log.WithFields(logrus.Fields{
		"points": fmt.Sprintf("%.1f", sel.TotalScore),
		"black":  sel.TotalBlack,
	}).Info("Selection complete")
}
