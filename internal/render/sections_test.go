package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_HeadedSections(t *testing.T) {
	summary := `A long day of errands and phone calls.

## Atmosphere
Busy but upbeat.

## Key Takeaways
- Car needs new tires
- Dentist moved to Friday

## Action Items
- Book tire appointment
`

	s := Split(summary)

	assert.Equal(t, "A long day of errands and phone calls.", s.Overview)
	assert.Equal(t, "Busy but upbeat.", s.Atmosphere)
	assert.Equal(t, "- Car needs new tires\n- Dentist moved to Friday", s.KeyTakeaways)
	assert.Equal(t, "- Book tire appointment", s.ActionItems)
}

func TestSplit_HeadingSpellings(t *testing.T) {
	tests := []struct {
		name    string
		heading string
	}{
		{"canonical", "Key Takeaways"},
		{"split words", "Key Take Aways"},
		{"lowercase", "key takeaways"},
		{"trailing colon", "Key Takeaways:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Split("## " + tc.heading + "\n- remember the milk\n")
			assert.Equal(t, "- remember the milk", s.KeyTakeaways)
			assert.Empty(t, s.Overview)
		})
	}
}

func TestSplit_InlineLabels(t *testing.T) {
	summary := `Quiet morning at home.

Atmosphere: calm and focused

Key Takeaways:

- Finish the report
`

	s := Split(summary)

	assert.Equal(t, "Quiet morning at home.", s.Overview)
	assert.Equal(t, "calm and focused", s.Atmosphere)
	assert.Equal(t, "- Finish the report", s.KeyTakeaways)
}

func TestSplit_RepeatedHeadingsMerge(t *testing.T) {
	summary := `## Atmosphere
Tense in the morning.

## Atmosphere
Relaxed by evening.
`

	s := Split(summary)

	assert.Equal(t, "Tense in the morning.\n\nRelaxed by evening.", s.Atmosphere)
}

func TestSplit_OverviewDropsStrayLists(t *testing.T) {
	summary := `Plain prose first.

- a loose bullet with no heading

More prose after.
`

	s := Split(summary)

	assert.Equal(t, "Plain prose first.\n\nMore prose after.", s.Overview)
	assert.Empty(t, s.KeyTakeaways)
}

func TestSplit_UnknownHeadingFoldsIntoOverview(t *testing.T) {
	s := Split("## Weather Report\nSunny all day.\n")
	assert.Equal(t, "Sunny all day.", s.Overview)
}

func TestSplit_Empty(t *testing.T) {
	s := Split("")
	assert.Empty(t, s.Overview)
	assert.Empty(t, s.Atmosphere)
	assert.Empty(t, s.KeyTakeaways)
	assert.Empty(t, s.ActionItems)
}
