// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access for a user
// and write their token bundle where the server expects it.
//
// Usage:
//   go run scripts/gcal-auth/main.go -user 42 [-credentials google-credentials.json] [-token-dir .tokens]
//
// It prints a browser URL; log in with the user's Google account, paste
// the authorization code, and <token-dir>/<user>.json will be saved.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"shift-calendar-sync/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth client credentials file")
	tokenDir := flag.String("token-dir", ".tokens", "directory token bundles are written to")
	userID := flag.Int("user", 0, "roster user id the token belongs to")
	flag.Parse()

	if *userID <= 0 {
		log.Fatal("-user is required and must be a positive integer")
	}

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open the following URL in a browser and log in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	bundle := gcalendar.TokenBundle{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenURI:     config.Endpoint.TokenURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}

	if err := os.MkdirAll(*tokenDir, 0o700); err != nil {
		log.Fatalf("Failed to create token dir: %v", err)
	}

	tokenPath := filepath.Join(*tokenDir, fmt.Sprintf("%d.json", *userID))
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(bundle); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token bundle saved to: %s\n", tokenPath)
	fmt.Println("The server will use it for POST /sync-calendar-oauth.")
}
