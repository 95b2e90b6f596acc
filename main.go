/* main.go
 * The "main" method for running the bot and webhook server. For details about
 * the bot see `readme.md`
 * Usage: go run main.go -season="<season>" -addr="<addr>" -test="<true|false>"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bracket-pool/api/api"
	"bracket-pool/bot"
	"bracket-pool/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Flags
	seasonPtr := flag.String("season", "2025-playoffs", "Season label brackets are stored under, e.g. 2025-playoffs")
	addrPtr := flag.String("addr", ":8080", "Listen address for the webhook and standings server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}

	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	apiPtr, err := api.NewAPI(os.Getenv("DB_NAME"), os.Getenv("MONGO_PROD_URI"), *seasonPtr)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Webhook and standings server runs alongside the bot
	go func() {
		cfg := web.Config{Addr: *addrPtr, API: apiPtr}
		if err := web.Start(cfg); err != nil {
			log.Fatalf("web server stopped: %v", err)
		}
	}()

	b, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
