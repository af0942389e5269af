package domain

type ResponseType string

const (
	ResponseInform ResponseType = "inform"
	ResponseAsk    ResponseType = "ask"
	ResponseWarn   ResponseType = "warn"
)

func ValidResponseType(r string) bool {
	switch ResponseType(r) {
	case ResponseInform, ResponseAsk, ResponseWarn:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Tone string

const (
	ToneSupportive Tone = "supportive"
	ToneNeutral    Tone = "neutral"
	ToneFirm       Tone = "firm"
)

type Verbosity string

const (
	VerbosityShort    Verbosity = "short"
	VerbosityMedium   Verbosity = "medium"
	VerbosityDetailed Verbosity = "detailed"
)

// Placement is where the client renders a curated answer.
type Placement string

const (
	PlacementModal     Placement = "modal"
	PlacementHomeAlert Placement = "home_alert"
	PlacementHomeFeed  Placement = "home_feed"
)

type CurationInput struct {
	Action               Action       `json:"action"`
	Reason               string       `json:"reason"`
	ResponseType         ResponseType `json:"response_type"`
	Severity             Severity     `json:"severity"`
	Confidence           float64      `json:"confidence"`
	RequiresConfirmation bool         `json:"requires_confirmation"`
}

// CuratedAnswer is the final user-facing message. It is rendered from
// templates, never from raw model output.
type CuratedAnswer struct {
	ResponseType ResponseType `json:"response_type"`
	Tone         Tone         `json:"tone"`
	Verbosity    Verbosity    `json:"verbosity"`
	Message      string       `json:"message"`
	FollowUp     *string      `json:"follow_up,omitempty"`
	CTA          *string      `json:"cta,omitempty"`
	Confidence   float64      `json:"confidence"`
}

// PlacedAnswer pairs a curated answer with its UI placement.
type PlacedAnswer struct {
	CuratedAnswer
	Placement Placement `json:"placement"`
}
