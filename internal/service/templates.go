package service

import "github.com/fitnova/central/internal/domain"

type toneTemplates map[domain.Tone]map[domain.Verbosity]string

// messageTemplates is the closed set of curated messages. Lookups that miss
// fall through to fallbackTemplates.
var messageTemplates = map[domain.Action]toneTemplates{
	domain.ActionReduceWorkoutIntensity: {
		domain.ToneSupportive: {
			domain.VerbosityShort:    "I reduced today's workout intensity slightly.",
			domain.VerbosityMedium:   "I slightly reduced today's workout intensity so your body can recover while you stay consistent.",
			domain.VerbosityDetailed: "I noticed that a few workouts were missed recently, so I reduced today's workout intensity slightly. This helps your body recover without breaking your routine.",
		},
		domain.ToneNeutral: {
			domain.VerbosityShort:    "Today's workout intensity was reduced.",
			domain.VerbosityMedium:   "Today's workout intensity was reduced to match your recent attendance.",
			domain.VerbosityDetailed: "Several recent workouts were missed, so today's workout has fewer sets. Intensity returns to normal once sessions are completed again.",
		},
		domain.ToneFirm: {
			domain.VerbosityShort:    "Today's workout is lighter. Complete it.",
			domain.VerbosityMedium:   "Today's workout is lighter because sessions were missed. Completing it keeps your plan on track.",
			domain.VerbosityDetailed: "Multiple workouts were missed recently, so today's intensity was reduced. Completing this lighter session matters more than intensity right now; skipping it again will stall your progress.",
		},
	},
	domain.ActionSimplifyDietPlan: {
		domain.ToneSupportive: {
			domain.VerbosityShort:    "I simplified your diet plan for today.",
			domain.VerbosityMedium:   "I simplified today's diet plan to make it easier to follow and stay on track.",
			domain.VerbosityDetailed: "Since diet adherence was a bit low recently, I simplified today's plan. This makes it easier to follow while still supporting your goals.",
		},
		domain.ToneNeutral: {
			domain.VerbosityShort:    "Today's diet plan was simplified.",
			domain.VerbosityMedium:   "Today's diet plan was simplified to improve adherence.",
			domain.VerbosityDetailed: "Recent diet days were missed, so today's plan has a lower calorie target and fewer steps. The full plan resumes once adherence improves.",
		},
		domain.ToneFirm: {
			domain.VerbosityShort:    "Today's diet plan is simpler. Stick to it.",
			domain.VerbosityMedium:   "Diet adherence has been low, so today's plan is simpler. Follow it through today.",
			domain.VerbosityDetailed: "Diet adherence has been low for several days, so today's plan was simplified. A simpler plan you follow beats a detailed one you skip; log every meal today.",
		},
	},
	domain.ActionSubstituteExercise: {
		domain.ToneSupportive: {
			domain.VerbosityShort:    "I swapped one exercise for an easier alternative.",
			domain.VerbosityMedium:   "I replaced one exercise with a safer alternative that works the same muscles.",
			domain.VerbosityDetailed: "I noticed one exercise might be contributing to fatigue, so I substituted it with a safer alternative that targets the same movement pattern.",
		},
		domain.ToneNeutral: {
			domain.VerbosityShort:    "One exercise was substituted.",
			domain.VerbosityMedium:   "One exercise was replaced with a lower-fatigue alternative for the same movement pattern.",
			domain.VerbosityDetailed: "One exercise in today's plan was replaced with a lower-fatigue alternative that trains the same movement pattern. Your total training volume is unchanged.",
		},
		domain.ToneFirm: {
			domain.VerbosityShort:    "One exercise was swapped to limit fatigue.",
			domain.VerbosityMedium:   "One exercise was swapped because it was adding too much fatigue.",
			domain.VerbosityDetailed: "One exercise was adding too much fatigue, so it was replaced with an alternative for the same movement pattern. Use the substitute until recovery improves.",
		},
	},
	domain.ActionSuggestLighterWorkout: {
		domain.ToneSupportive: {
			domain.VerbosityShort:  "A lighter workout might help this week.",
			domain.VerbosityMedium: "A few sessions were missed, so a lighter workout could help you get back into your routine.",
		},
		domain.ToneFirm: {
			domain.VerbosityDetailed: "Workout adherence dropped significantly in this period. Switch to lighter sessions until you are completing them consistently again.",
		},
	},
	domain.ActionAdjustReminderTime: {
		domain.ToneSupportive: {
			domain.VerbosityShort:  "Want to try a different reminder time?",
			domain.VerbosityMedium: "Several reminders were missed, so a different reminder time might suit your day better.",
		},
		domain.ToneFirm: {
			domain.VerbosityDetailed: "More reminders were missed than acknowledged. Move your reminders to a time you can reliably act on them.",
		},
	},
	domain.ActionNoAction: {
		domain.ToneNeutral: {
			domain.VerbosityShort:  "No changes needed right now.",
			domain.VerbosityMedium: "Your recent activity looks steady, so no changes are needed right now.",
		},
		domain.ToneSupportive: {
			domain.VerbosityShort:  "You're on track. Keep it up.",
			domain.VerbosityMedium: "You're on track. Your recent activity looks steady, so no changes are needed.",
		},
	},
}

const genericReason = "I reviewed your recent activity."

var fallbackTemplates = map[domain.Verbosity]string{
	domain.VerbosityShort:    "%s",
	domain.VerbosityMedium:   "Here is what I noticed: %s",
	domain.VerbosityDetailed: "Here is what I noticed from your recent activity: %s I'll keep adjusting your plan as your routine changes.",
}

var ctaTemplates = map[domain.Action]string{
	domain.ActionReduceWorkoutIntensity: "Would you like me to keep workouts lighter for a few days?",
	domain.ActionSimplifyDietPlan:       "Should I keep your diet plan simpler this week?",
}

const defaultCTA = "Would you like to proceed?"

var followUpTemplates = map[domain.Action]string{
	domain.ActionReduceWorkoutIntensity: "Do you want me to keep workouts lighter this week, or return to your original plan?",
	domain.ActionSimplifyDietPlan:       "Would you like to keep this simpler plan going forward?",
	domain.ActionSubstituteExercise:     "Do you want to keep the substitute exercise, or go back to the original one?",
}
