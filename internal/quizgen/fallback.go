package quizgen

import "github.com/abhisek/apptitude/internal/quiz"

// fallbackQuestions is served when the model provider is unavailable.
var fallbackQuestions = []quiz.Question{
	{
		Text:        "A train travels 240 kilometers in 3 hours. What is its average speed in kilometers per hour?",
		Answer:      "80",
		Explanation: "Average speed = Total distance / Total time = 240 km / 3 hours = 80 km/h",
	},
	{
		Text:        "If a shirt costs $45 and there's a 20% discount, what's the final price?",
		Answer:      "36",
		Explanation: "20% of $45 = $45 x 0.2 = $9 discount. Final price = $45 - $9 = $36",
	},
	{
		Text:        "A recipe needs 2.5 cups of flour to make 12 cookies. How many cups are needed for 30 cookies?",
		Answer:      "6.25",
		Explanation: "For 30 cookies (2.5 x 30/12) = 2.5 x 2.5 = 6.25 cups",
	},
	{
		Text:        "If you save $15 per week, how much will you save in 8 months (assuming 4 weeks per month)?",
		Answer:      "480",
		Explanation: "8 months x 4 weeks x $15 = 32 weeks x $15 = $480",
	},
	{
		Text:        "A car uses 6 liters of fuel per 100 kilometers. How many liters will it use for a 250km journey?",
		Answer:      "15",
		Explanation: "Fuel needed = (250 km x 6 L) / 100 km = 15 liters",
	},
}

// fallbackFor picks a deterministic fallback question for the level.
func fallbackFor(level int) quiz.Question {
	return fallbackQuestions[level%len(fallbackQuestions)]
}
