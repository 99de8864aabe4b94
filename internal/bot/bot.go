// Package bot is the Discord front end: it registers the slash commands,
// routes interactions to the upload coordinator, and watches messages for
// attachments that consume a pending upload context.
package bot

import (
	"StudyVault/config"
	"StudyVault/internal/service"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

type Bot struct {
	session     *discordgo.Session
	coordinator *service.Coordinator
	guildID     string

	fetchLimiter *rate.Limiter
	httpClient   *http.Client

	registered []*discordgo.ApplicationCommand
}

// New builds the bot around an existing coordinator.
func New(coordinator *service.Coordinator) (*Bot, error) {
	session, err := discordgo.New("Bot " + config.AppConfig.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:     session,
		coordinator: coordinator,
		guildID:     config.AppConfig.GuildID,
		fetchLimiter: rate.NewLimiter(
			rate.Limit(config.AppConfig.AttachmentFetchRate),
			config.AppConfig.AttachmentFetchBurst,
		),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)
	return b, nil
}

// Open connects to the gateway and registers the guild commands.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	log.Printf("bot online as %s", b.session.State.User.Username)

	for _, cmd := range commandDefinitions() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd)
		if err != nil {
			return fmt.Errorf("register command %s: %w", cmd.Name, err)
		}
		b.registered = append(b.registered, created)
	}
	return nil
}

// Close removes the registered commands and disconnects.
func (b *Bot) Close() error {
	for _, cmd := range b.registered {
		if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.guildID, cmd.ID); err != nil {
			log.Printf("delete command %s failed: %v", cmd.Name, err)
		}
	}
	return b.session.Close()
}

// interactionUserID returns the invoking user's identity for guild and DM
// interactions alike.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
