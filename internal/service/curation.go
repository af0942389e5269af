package service

import (
	"fmt"
	"strings"

	"github.com/fitnova/central/internal/domain"
)

// Defaults used when rendering decisions that carry no curation hints.
const (
	defaultCurationConfidence = 0.8
)

// ResolveTone picks a tone; high severity wins over confidence.
func ResolveTone(severity domain.Severity, confidence float64) domain.Tone {
	switch {
	case severity == domain.SeverityHigh:
		return domain.ToneFirm
	case confidence < 0.6:
		return domain.ToneFirm
	case confidence < 0.8:
		return domain.ToneNeutral
	default:
		return domain.ToneSupportive
	}
}

func ResolveVerbosity(responseType domain.ResponseType, severity domain.Severity, requiresConfirmation bool) domain.Verbosity {
	switch {
	case responseType == domain.ResponseAsk:
		return domain.VerbosityShort
	case severity == domain.SeverityHigh:
		return domain.VerbosityDetailed
	case requiresConfirmation:
		return domain.VerbosityDetailed
	case responseType == domain.ResponseWarn:
		return domain.VerbosityDetailed
	default:
		return domain.VerbosityMedium
	}
}

// BuildCTA returns the confirmation prompt, or nil when nothing needs
// confirming.
func BuildCTA(action domain.Action, requiresConfirmation bool) *string {
	if !requiresConfirmation {
		return nil
	}
	cta, ok := ctaTemplates[action]
	if !ok {
		cta = defaultCTA
	}
	return &cta
}

// BuildFollowUp asks the action's follow-up question when confirmation is
// required, otherwise it restates the reason. Empty means no follow-up.
func BuildFollowUp(action domain.Action, reason string, requiresConfirmation bool) *string {
	if requiresConfirmation {
		if q, ok := followUpTemplates[action]; ok {
			return &q
		}
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil
	}
	return &reason
}

// RenderMessage looks up the curated template and never fails: a miss
// renders the reason through the per-verbosity fallback.
func RenderMessage(action domain.Action, tone domain.Tone, verbosity domain.Verbosity, reason string) string {
	if msg, ok := messageTemplates[action][tone][verbosity]; ok {
		return msg
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = genericReason
	}

	tmpl, ok := fallbackTemplates[verbosity]
	if !ok {
		tmpl = fallbackTemplates[domain.VerbosityMedium]
	}
	return fmt.Sprintf(tmpl, reason)
}

// CurateAnswer renders one decision into a user-facing answer.
func CurateAnswer(in domain.CurationInput) domain.CuratedAnswer {
	responseType := in.ResponseType
	if responseType == "" {
		responseType = domain.ResponseInform
	}

	tone := ResolveTone(in.Severity, in.Confidence)
	verbosity := ResolveVerbosity(responseType, in.Severity, in.RequiresConfirmation)

	return domain.CuratedAnswer{
		ResponseType: responseType,
		Tone:         tone,
		Verbosity:    verbosity,
		Message:      RenderMessage(in.Action, tone, verbosity, in.Reason),
		FollowUp:     BuildFollowUp(in.Action, in.Reason, in.RequiresConfirmation),
		CTA:          BuildCTA(in.Action, in.RequiresConfirmation),
		Confidence:   in.Confidence,
	}
}

// MapPlacement decides where the client shows an answer.
func MapPlacement(responseType domain.ResponseType, severity domain.Severity) domain.Placement {
	switch {
	case responseType == domain.ResponseAsk:
		return domain.PlacementModal
	case severity == domain.SeverityHigh:
		return domain.PlacementHomeAlert
	case responseType == domain.ResponseWarn:
		return domain.PlacementHomeAlert
	default:
		return domain.PlacementHomeFeed
	}
}

// AssembleCuratedResponses renders every decision with default hints, in
// decision order.
func AssembleCuratedResponses(decisions []domain.Decision) []domain.PlacedAnswer {
	out := make([]domain.PlacedAnswer, 0, len(decisions))
	for _, d := range decisions {
		in := domain.CurationInput{
			Action:               d.Action,
			Reason:               d.Reason,
			ResponseType:         domain.ResponseInform,
			Severity:             domain.SeverityLow,
			Confidence:           defaultCurationConfidence,
			RequiresConfirmation: d.RequiresConfirmation,
		}
		out = append(out, domain.PlacedAnswer{
			CuratedAnswer: CurateAnswer(in),
			Placement:     MapPlacement(in.ResponseType, in.Severity),
		})
	}
	return out
}
