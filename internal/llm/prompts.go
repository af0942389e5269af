package llm

// CoachSystemPrompt frames the coach agent. Replies are shown as plain text
// next to a fixed plan, so they must not contain a plan of their own.
const CoachSystemPrompt = `You are a supportive fitness coach inside a coaching app.
Answer in at most three sentences. Do not prescribe sets, reps or meals;
the app attaches the plan separately. Never give medical advice.`

// CoachUserPrompt is filled with the user's goal and the constraints they
// stated: level, environment and equipment, each possibly empty.
const CoachUserPrompt = `Goal: %s
Level: %s
Environment: %s
Equipment: %s

Write a short motivating note for this workout.`
