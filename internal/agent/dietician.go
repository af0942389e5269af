package agent

import "context"

const dieticianConfidence = 0.8

var dieticianMeals = []string{"Oatmeal + fruit", "Grilled chicken salad", "Fish + veggies"}

// DieticianAgent answers nutrition questions. As a secondary agent it only
// contributes the protein hint.
type DieticianAgent struct{}

func NewDieticianAgent() *DieticianAgent { return &DieticianAgent{} }

func (a *DieticianAgent) Name() string { return NameDietician }

func (a *DieticianAgent) Respond(ctx context.Context, req Request) (Response, error) {
	return Response{
		Agent:      NameDietician,
		Confidence: dieticianConfidence,
		Message:    "Here's a simple day of eating to start from.",
		Result: map[string]any{
			"meals":   append([]string(nil), dieticianMeals...),
			"protein": ProteinHint(),
		},
	}, nil
}

// ProteinHint is the nutrition note attached to training answers.
func ProteinHint() map[string]string {
	return map[string]string{
		"recommendation": "≈1.6–2.2 g per kg bodyweight",
		"note":           "Adequate protein supports muscle recovery and growth",
	}
}
