package render

import (
	"fmt"
	"strings"

	"github.com/sandevgo/beediary/internal/service/journal"
)

// cleanShort strips the redundant "Summary" decorations the assistant
// likes to prepend to short summaries.
var cleanShort = strings.NewReplacer(
	"## Summary\n", "",
	"##Summary\n", "",
	"**Summary:**", "",
	"Summary:", "",
)

// Day renders a finalized day bucket into the journal document.
// Deterministic over the bucket contents: no clock, no randomness, and
// every optional field may be empty.
func Day(b *journal.DayBucket) string {
	var sb strings.Builder
	sb.WriteString("# Daily Summary\n")

	sections := daySections(b)
	if sections.Overview != "" {
		sb.WriteString("\n" + sections.Overview + "\n")
	}
	if sections.Atmosphere != "" {
		sb.WriteString("\n## Atmosphere\n" + sections.Atmosphere + "\n")
	}
	if sections.KeyTakeaways != "" {
		sb.WriteString("\n## Key Takeaways\n" + sections.KeyTakeaways + "\n")
	}
	if sections.ActionItems != "" {
		sb.WriteString("\n## Action Items\n" + sections.ActionItems + "\n")
	}

	if len(b.Facts) > 0 {
		sb.WriteString("\n### Facts\n")
		for _, fact := range b.Facts {
			sb.WriteString("* " + fact.Text + "\n")
		}
	}

	if len(b.Conversations) > 0 {
		sb.WriteString("\n## Conversations\n")
		for i, entry := range b.Conversations {
			conv := entry.Conversation
			fmt.Fprintf(&sb, "\nConversation %d (ID: %d)\n", i+1, conv.ID)

			if conv.PrimaryLocation != nil && conv.PrimaryLocation.Address != "" {
				fmt.Fprintf(&sb, "Location: %s\n", conv.PrimaryLocation.Address)
			}

			if short := strings.TrimSpace(cleanShort.Replace(conv.ShortSummary)); short != "" {
				sb.WriteString(short + "\n")
			}

			if len(entry.Utterances) > 0 {
				sb.WriteString("\n#### Transcript\n")
				for _, u := range entry.Utterances {
					if u.Text == "" || u.Speaker == "" {
						continue
					}
					fmt.Fprintf(&sb, "**Speaker %s**: %s\n", u.Speaker, u.Text)
				}
			}
		}
	}

	return sb.String()
}

// daySections extracts the daily summary sections from the first
// conversation that carries one. Bee attaches the whole day's summary to
// each conversation, so the first is as good as any.
func daySections(b *journal.DayBucket) Sections {
	for _, entry := range b.Conversations {
		if entry.Conversation.Summary != "" {
			return Split(entry.Conversation.Summary)
		}
	}
	return Sections{}
}
