// SPDX-License-Identifier: MIT

// Command rcv runs a ranked-choice tally over a file of raw ballots,
// one comma-separated line per ballot, and prints the winner.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/instantrunoff/rcv"
)

func main() {
	log.SetFlags(0)

	strategyName := flag.String("strategy", "dowdall", "elimination strategy: eliminate-all|dowdall|ranked-pairs|condorcet")
	verbose := flag.Bool("verbose", false, "trace each elimination round to stderr")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rcv [-strategy=...] [-verbose] [-json] <ballots-file>")
		os.Exit(2)
	}

	strategy, err := parseStrategy(*strategyName)
	if err != nil {
		log.Fatal(err)
	}

	ballots, err := readBallots(flag.Arg(0))
	if err != nil {
		log.Fatalf("rcv: %v", err)
	}

	engine := rcv.NewEngine()
	engine.SetStrategy(strategy)
	if *verbose {
		engine.Trace = func(round int, votes map[uint32]uint64, weakest []uint32) {
			log.Printf("round %d: votes=%v eliminated=%v", round, votes, weakest)
		}
	}
	engine.InsertVotes(ballots)

	winner, ok := engine.DetermineWinner()
	printResult(winner, ok, *asJSON)
}

func parseStrategy(name string) (rcv.EliminationStrategy, error) {
	switch strings.ToLower(name) {
	case "eliminate-all":
		return rcv.EliminateAll, nil
	case "dowdall":
		return rcv.DowdallScoring, nil
	case "ranked-pairs":
		return rcv.RankedPairs, nil
	case "condorcet":
		return rcv.CondorcetRankedPairs, nil
	default:
		return 0, fmt.Errorf("rcv: unknown strategy %q", name)
	}
}

// readBallots reads one ballot per line, each a comma-separated list
// of signed integers in the spec's raw ballot format. Parsing raw
// vectors is a thin collaborator, not a specified core concern, so it
// leans entirely on the standard library's encoding/csv.
func readBallots(path string) ([]rcv.RankedBallot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var raw [][]int32
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		values := make([]int32, len(record))
		for i, field := range record {
			n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", field, err)
			}
			values[i] = int32(n)
		}
		raw = append(raw, values)
	}

	return rcv.ParseBallots(raw)
}

func printResult(winner uint32, ok bool, asJSON bool) {
	if asJSON {
		out := struct {
			Winner *uint32 `json:"winner"`
		}{}
		if ok {
			out.Winner = &winner
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}
		return
	}

	if ok {
		fmt.Printf("winner: %d\n", winner)
	} else {
		fmt.Println("winner: none")
	}
}
