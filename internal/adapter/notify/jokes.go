package notify

import (
	"math/rand"

	"zephyrtask/internal/core/ports"
)

// programmingJokes is the bundled flavor-text source for reward emails.
var programmingJokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"There are only 10 kinds of people in this world: those who know binary and those who don't.",
	"A SQL query walks into a bar, walks up to two tables and asks: can I join you?",
	"Why do Java developers wear glasses? Because they don't C#.",
	"How many programmers does it take to change a light bulb? None, that's a hardware problem.",
	"A programmer's wife tells him: go to the store and buy a loaf of bread. If they have eggs, buy a dozen. He comes home with twelve loaves of bread.",
	"I would tell you a UDP joke, but you might not get it.",
	"To understand recursion you must first understand recursion.",
	"99 little bugs in the code, 99 little bugs. Take one down, patch it around, 127 little bugs in the code.",
	"Knock knock. Race condition. Who's there?",
}

// Jokes serves a pseudo-random pick from the bundled list.
type Jokes struct{}

var _ ports.JokeService = Jokes{}

func NewJokes() Jokes {
	return Jokes{}
}

func (Jokes) Joke() string {
	return programmingJokes[rand.Intn(len(programmingJokes))]
}
