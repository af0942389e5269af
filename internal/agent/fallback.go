package agent

import "context"

const fallbackMessage = "I understand. Tell me what you'd like help with."

type FallbackAgent struct{}

func NewFallbackAgent() *FallbackAgent { return &FallbackAgent{} }

func (a *FallbackAgent) Name() string { return NameFallback }

func (a *FallbackAgent) Respond(ctx context.Context, req Request) (Response, error) {
	return Response{
		Agent:      NameFallback,
		Confidence: 0.5,
		Message:    fallbackMessage,
		Result:     map[string]any{"message": fallbackMessage},
	}, nil
}
