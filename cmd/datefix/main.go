// cmd/datefix/main.go
// One-time batch migration over a games.json file: derives the date field of
// each game from its YYYYMMDD-encoded identifier, and optionally strips the
// free-text recaps. Writes the file back in place.
//
// Usage:
//
//	go run ./cmd/datefix -file data/boys/games.json
//	go run ./cmd/datefix -file data/girls/games.json -strip-recaps
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/courtside/hoopsapi/models"
)

func main() {
	file := flag.String("file", "", "path to games.json (required)")
	stripRecaps := flag.Bool("strip-recaps", false, "remove recap fields")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}

	dated, skipped := 0, 0
	for i := range games {
		if *stripRecaps {
			games[i].Recap = nil
		}
		if games[i].Date != "" {
			continue
		}
		date, err := models.DateFromID(games[i].ID)
		if err != nil {
			log.Printf("game %d: %v", games[i].ID, err)
			skipped++
			continue
		}
		games[i].Date = date
		dated++
	}

	out, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		log.Fatal("marshal:", err)
	}
	if err := os.WriteFile(*file, append(out, '\n'), 0o644); err != nil {
		log.Fatalf("write %s: %v", *file, err)
	}

	fmt.Printf("%s: %d games dated, %d skipped\n", *file, dated, skipped)
}
