/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"bracket-pool/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"go.mongodb.org/mongo-driver/mongo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Bracket Pool Bot v1.0\n")
	res.WriteString("`$season`: Get information about the pool including season name, year, point values and number of required picks\n")
	res.WriteString("`$set team1 ... team13`: Sets your bracket. The 13 winners go in game order: AFC wildcard (3), NFC wildcard (3), AFC divisional (2), NFC divisional (2), AFC championship, NFC championship, Super Bowl\n")
	res.WriteString("There is fuzzy matching on names, however you should try and have a close match for the best results. Names that contain two or more words need to be encased in \" (e.g. \"Kansas City\")\n")
	res.WriteString("`$bracket`: shows the current status of your bracket, pick by pick\n")
	res.WriteString("`$teams`: shows the playoff teams for this season with their conference and seed. Use this list to set your bracket\n")
	res.WriteString("`$standings`: shows the pool standings, ranked by points then by maximum possible score. e- marks a bracket that can no longer reach the podium, T- marks a tie\n")
	res.WriteString("`$remaining`: shows the playoff games that do not have a result yet, as far as matchups are known\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// seasonHandler handles the $season command with a DiscordSession interface
func (b *Bot) seasonHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.GetSeasonInfo()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// setBracketHandler handles the $set command with a DiscordSession interface
func (b *Bot) setBracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res := fmt.Sprintf("%s's bracket has been updated\n", user.Username)

	// Split on spaces but keep quoted names together, so "Kansas City" is one
	// team not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	msg, _ := spaceSplitter.Split(message.Content)
	winners := msg[1:]

	err := b.APIPtr.SubmitBracket(user, winners)
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured setting %s's bracket: %s", user.Username, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// checkBracketHandler handles the $bracket command with a DiscordSession interface
func (b *Bot) checkBracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res, err := b.APIPtr.CheckBracket(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $set to set your picks\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured checking %s's bracket", user.Username)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetStandings()
	if err != nil {
		log.Println(err)
		res = "An error occurred getting the standings"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// teamsHandler handles the $teams command with a DiscordSession interface
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	teams, err := b.APIPtr.GetTeams()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the teams list")
		return
	}

	var res strings.Builder
	res.WriteString("Playoff teams this season are:\n")
	for _, team := range teams {
		res.WriteString(fmt.Sprintf("- %s\n", team))
	}

	session.ChannelMessageSend(message.ChannelID, res.String())
}

// remainingGamesHandler handles the $remaining command with a DiscordSession interface
func (b *Bot) remainingGamesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	games, err := b.APIPtr.GetRemainingGames()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the remaining games")
		return
	}

	var res strings.Builder
	if len(games) == 0 {
		res.WriteString("No games remaining, the season is decided")
	} else {
		res.WriteString("Remaining games:\n")
		for _, game := range games {
			res.WriteString(game)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$season"):
		b.seasonHandler(session, message)

	case startsWith(message.Content, "$set"):
		b.setBracketHandler(session, message)

	case startsWith(message.Content, "$bracket"):
		b.checkBracketHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$teams"):
		b.teamsHandler(session, message)

	case startsWith(message.Content, "$remaining"):
		b.remainingGamesHandler(session, message)
	}
}
