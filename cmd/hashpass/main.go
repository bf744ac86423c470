// cmd/hashpass/main.go
// Prints the bcrypt hash of the admin passphrase for ADMIN_PASS_HASH.
//
// Usage:
//
//	go run ./cmd/hashpass -passphrase "go team"
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	passphrase := flag.String("passphrase", "", "plain-text admin passphrase (required)")
	flag.Parse()

	if *passphrase == "" {
		log.Fatal("-passphrase is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*passphrase), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	fmt.Printf("ADMIN_PASS_HASH=%s\n", hash)
}
