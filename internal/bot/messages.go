package bot

import (
	"StudyVault/internal/service"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

// eventTimeout bounds all external calls made while handling one event.
const eventTimeout = 5 * time.Minute

// onMessage handles inbound messages, forwarding any attachments to the
// coordinator under the sender's pending upload context.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if len(m.Attachments) == 0 {
		return
	}

	// Bound the whole fetch-store-index sequence so a stuck backend call
	// cannot hold this event forever; timeouts surface through outcomes.
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	attachments := make([]service.Attachment, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		data, err := b.fetchAttachment(ctx, att.URL)
		if err != nil {
			b.send(m.ChannelID, fmt.Sprintf("❌ Could not read **%s**: %v", att.Filename, err))
			continue
		}
		attachments = append(attachments, service.Attachment{Filename: att.Filename, Data: data})
	}
	if len(attachments) == 0 {
		return
	}

	for _, outcome := range b.coordinator.ReceiveAttachments(ctx, m.Author.ID, attachments) {
		b.send(m.ChannelID, outcomeMessage(outcome))
	}
}

// fetchAttachment downloads attachment bytes from the platform CDN,
// bounded by the shared rate limiter.
func (b *Bot) fetchAttachment(ctx context.Context, url string) ([]byte, error) {
	if err := b.fetchLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment fetch returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// outcomeMessage renders one attachment outcome as a chat message. Every
// terminal outcome maps to exactly one message.
func outcomeMessage(outcome service.AttachmentOutcome) string {
	switch outcome.Kind {
	case service.FailureNoActiveContext:
		return "❗ Please use `/upload` before sending a file."
	case service.FailureInvalidContext:
		return fmt.Sprintf("❌ Upload rejected: %v. Run `/upload` again with the missing fields.", outcome.Err)
	case service.FailureStorageWrite:
		return fmt.Sprintf("❌ Upload failed for **%s**: %v", outcome.Filename, outcome.Err)
	case service.FailureMetadataWrite:
		return fmt.Sprintf("⚠️ **%s** was stored but could not be indexed: %v\nIt exists at %s but will not show up in searches.",
			outcome.Filename, outcome.Err, outcome.Link)
	}

	record := outcome.Record
	chapter := "-"
	if record.Chapter != nil {
		chapter = *record.Chapter
	}
	return fmt.Sprintf(
		"✅ **%s** saved under:\n> 📚 **Subject**: %s\n> 📖 **Chapter**: %s\n> 🔖 **Topic**: %s\n> 🔗 [View File](%s)",
		record.Filename, record.Subject, chapter, record.Topic, outcome.Link)
}

// send posts a channel message, logging delivery trouble.
func (b *Bot) send(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("send message failed: %v", err)
	}
}
