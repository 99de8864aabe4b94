package bot

import (
	"StudyVault/internal/service"
	"StudyVault/model"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const listLimit = 15

// commandDefinitions declares the guild slash commands.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check if the bot is alive",
		},
		{
			Name:        "upload",
			Description: "Set subject/chapter/topic for the next file",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject name (e.g., Physics)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "chapter", Description: "Chapter number/name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "topic", Description: "Topic", Required: true},
				{
					Type: discordgo.ApplicationCommandOptionString, Name: "category", Description: "File category (default Notes)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Notes", Value: string(model.CategoryNotes)},
						{Name: "Assignments", Value: string(model.CategoryAssignments)},
						{Name: "Exam Papers", Value: string(model.CategoryExamPapers)},
					},
				},
			},
		},
		{
			Name:        "set_assignment",
			Description: "Add an assignment with deadline and optional file",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject name"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "chapter", Description: "Chapter number or name"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "topic", Description: "Topic name"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "deadline", Description: "Deadline in YYYY-MM-DD format (e.g., 2025-06-22)"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "Description of the assignment"},
				{Type: discordgo.ApplicationCommandOptionAttachment, Name: "file", Description: "Upload a related file (PDF preferred)"},
			},
		},
		{
			Name:        "get_notes",
			Description: "View uploaded notes by subject and chapter",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject name (e.g. Physics)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "chapter", Description: "Chapter name/number (e.g. 2)", Required: true},
			},
		},
		{
			Name:        "list_notes",
			Description: "List uploaded notes, optionally filtered",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject filter"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "chapter", Description: "Chapter filter"},
			},
		},
		{
			Name:        "list_assignments",
			Description: "List assignments by subject and status",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject filter"},
				{
					Type: discordgo.ApplicationCommandOptionString, Name: "status", Description: "Assignment status (default Pending)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Pending", Value: string(model.StatusPending)},
						{Name: "Completed", Value: string(model.StatusCompleted)},
					},
				},
			},
		},
	}
}

// onInteraction dispatches slash command invocations.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case "ping":
		b.respond(i, "🏓 Pong!")
	case "upload":
		b.handleUpload(i)
	case "set_assignment":
		b.handleSetAssignment(i)
	case "get_notes":
		b.handleGetNotes(i)
	case "list_notes":
		b.handleListNotes(i)
	case "list_assignments":
		b.handleListAssignments(i)
	}
}

// stringOptions flattens the interaction's string options into a map.
func stringOptions(i *discordgo.InteractionCreate) map[string]string {
	opts := make(map[string]string)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			opts[opt.Name] = opt.StringValue()
		}
	}
	return opts
}

// attachmentOption resolves the attachment option of a command, if any.
func attachmentOption(i *discordgo.InteractionCreate) *discordgo.MessageAttachment {
	data := i.ApplicationCommandData()
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok || data.Resolved == nil {
			return nil
		}
		return data.Resolved.Attachments[id]
	}
	return nil
}

func (b *Bot) handleUpload(i *discordgo.InteractionCreate) {
	opts := stringOptions(i)
	params := service.BeginParams{
		Subject:  opts["subject"],
		Chapter:  opts["chapter"],
		Topic:    opts["topic"],
		Category: model.Category(opts["category"]),
	}
	if _, err := b.coordinator.Begin(context.Background(), interactionUserID(i), params); err != nil {
		b.respond(i, "❌ "+err.Error())
		return
	}
	b.respond(i, fmt.Sprintf("📥 Ready to upload file for **%s / %s / %s**",
		params.Subject, params.Chapter, params.Topic))
}

func (b *Bot) handleSetAssignment(i *discordgo.InteractionCreate) {
	b.deferEphemeral(i)
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	opts := stringOptions(i)
	params := service.AssignmentParams{
		Subject:     opts["subject"],
		Chapter:     opts["chapter"],
		Topic:       opts["topic"],
		Deadline:    opts["deadline"],
		Description: opts["description"],
	}

	var file *service.Attachment
	if att := attachmentOption(i); att != nil {
		data, err := b.fetchAttachment(ctx, att.URL)
		if err != nil {
			b.followup(i, "❌ File upload failed: "+err.Error())
			return
		}
		file = &service.Attachment{Filename: att.Filename, Data: data}
	}

	result, err := b.coordinator.SetAssignment(ctx, interactionUserID(i), params, file)
	if err != nil {
		b.followup(i, "❌ "+err.Error())
		return
	}
	if result.FileOutcome != nil && result.FileOutcome.Kind != service.FailureNone {
		b.followup(i, outcomeMessage(*result.FileOutcome))
		return
	}

	reply := fmt.Sprintf("✅ Assignment set for **%s - Chapter %s - %s**",
		params.Subject, params.Chapter, params.Topic)
	if result.EventLink != "" {
		reply += fmt.Sprintf("\n📅 [Calendar Event](%s)", result.EventLink)
	}
	if result.FileOutcome != nil && result.FileOutcome.Link != "" {
		reply += fmt.Sprintf("\n📎 [File Link](%s)", result.FileOutcome.Link)
	}
	b.followup(i, reply)
}

func (b *Bot) handleGetNotes(i *discordgo.InteractionCreate) {
	b.deferEphemeral(i)
	opts := stringOptions(i)
	b.replyNotesList(i, opts["subject"], opts["chapter"],
		fmt.Sprintf("📚 **Notes for %s / Chapter %s:**", opts["subject"], opts["chapter"]))
}

func (b *Bot) handleListNotes(i *discordgo.InteractionCreate) {
	b.deferEphemeral(i)
	opts := stringOptions(i)
	b.replyNotesList(i, opts["subject"], opts["chapter"], "📚 **Uploaded notes:**")
}

func (b *Bot) replyNotesList(i *discordgo.InteractionCreate, subject, chapter, header string) {
	files, err := service.FindNotes(context.Background(), subject, chapter)
	if err != nil {
		b.followup(i, "❌ Lookup failed: "+err.Error())
		return
	}
	if len(files) == 0 {
		b.followup(i, "📂 No notes found for that subject and chapter.")
		return
	}

	var sb strings.Builder
	sb.WriteString(header + "\n\n")
	for idx, f := range files {
		if idx == listLimit {
			break
		}
		fmt.Fprintf(&sb, "• **%s** → [Open](%s)\n", f.Filename, f.AccessLink)
	}
	if len(files) > listLimit {
		fmt.Fprintf(&sb, "\n...and %d more.", len(files)-listLimit)
	}
	b.followup(i, sb.String())
}

func (b *Bot) handleListAssignments(i *discordgo.InteractionCreate) {
	b.deferEphemeral(i)
	opts := stringOptions(i)
	status := model.Status(opts["status"])
	if status == "" {
		status = model.StatusPending
	}
	assignments, err := service.FindAssignments(context.Background(), opts["subject"], status)
	if err != nil {
		b.followup(i, "❌ Lookup failed: "+err.Error())
		return
	}
	if len(assignments) == 0 {
		b.followup(i, fmt.Sprintf("📂 No %s assignments found.", strings.ToLower(string(status))))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 **%s assignments:**\n\n", status)
	for idx, a := range assignments {
		if idx == listLimit {
			break
		}
		line := fmt.Sprintf("• **%s** - Chapter %s - %s", a.Subject, a.Chapter, a.Topic)
		if a.Deadline != nil {
			line += " (due " + a.Deadline.Format("2006-01-02") + ")"
		}
		sb.WriteString(line + "\n")
	}
	if len(assignments) > listLimit {
		fmt.Fprintf(&sb, "\n...and %d more.", len(assignments)-listLimit)
	}
	b.followup(i, sb.String())
}

// respond sends an immediate interaction response.
func (b *Bot) respond(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("interaction respond failed: %v", err)
	}
}

// deferEphemeral acknowledges an interaction whose processing may exceed
// the platform's immediate-response window.
func (b *Bot) deferEphemeral(i *discordgo.InteractionCreate) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("interaction defer failed: %v", err)
	}
}

// followup completes a deferred interaction.
func (b *Bot) followup(i *discordgo.InteractionCreate, content string) {
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("interaction followup failed: %v", err)
	}
}
