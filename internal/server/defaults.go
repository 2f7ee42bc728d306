package server

// defaultRounds is the built-in round set used to seed a fresh night and as
// the fallback when a persisted snapshot is missing or unusable. Ids are
// assigned when the rounds are appended to a night.
func defaultRounds() []Round {
	seeds := []struct {
		name    string
		icon    string
		prompt  string
		minutes int
		seconds int
	}{
		{"Trivia Blitz", "🧠", "Ten rapid-fire questions. One point each, no conferring.", 5, 0},
		{"Charades", "🎭", "Act out the film title on your card. No words, no lip-syncing.", 2, 0},
		{"Name That Tune", "🎵", "First team to shout the song title and artist takes the point.", 1, 30},
		{"Sketch It", "✏️", "Draw the phrase for your team. Letters and numbers are off limits.", 1, 0},
		{"Final Wager", "🏆", "Write down your wager, then answer the closing question together.", 3, 0},
	}
	rounds := make([]Round, 0, len(seeds))
	for _, seed := range seeds {
		resource, _ := resourceBlock(resourceText, "", "")
		rounds = append(rounds, Round{
			GameName:       seed.name,
			GameIcon:       seed.icon,
			PromptMarkup:   promptBlock(seed.prompt),
			ResourceMarkup: resource,
			TimerMinutes:   seed.minutes,
			TimerSeconds:   seed.seconds,
		})
	}
	return rounds
}
