// Command devtoken prints a signed bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"accessinvites/config"
	"accessinvites/internal/adapters/auth"
)

func main() {
	userID := flag.String("user", "", "user ID placed in the token subject")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -user <id> [-email <email>] [-ttl 1h]")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("devtoken refuses to run with GO_ENV=production")
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*userID, *email, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
