package core

const (
	AppName       = "beediary"
	AppUserAgent  = "beediary/0.1"
	AppVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/beediary"
)

// Location is the structured address attached to a conversation, when the
// device resolved one.
type Location struct {
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Conversation is one row of the /me/conversations listing. The summary
// fields are free text produced by the assistant and any of them may be
// empty.
type Conversation struct {
	ID              int64     `json:"id"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	ShortSummary    string    `json:"short_summary,omitempty"`
	PrimaryLocation *Location `json:"primary_location,omitempty"`
}

// Utterance is a single (speaker, text) pair of a transcript.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Transcription is one recording segment of a conversation detail.
type Transcription struct {
	Utterances []Utterance `json:"utterances"`
}

// Fact is one confirmed fact from the /me/facts listing.
type Fact struct {
	ID             int64  `json:"id"`
	Text           string `json:"text"`
	CreatedAt      string `json:"created_at"`
	ConversationID int64  `json:"conversation_id,omitempty"`
}
