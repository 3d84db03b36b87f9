package quote

// fallbackQuotes is the curated list used when no source returns a usable quote
var fallbackQuotes = []Quote{
	// Tech leadership
	{"Innovation distinguishes between a leader and a follower.", "Steve Jobs", Innovation},
	{"Move fast and learn things.", "Meta Engineering", Tech},
	{"Done is better than perfect.", "Sheryl Sandberg", Leadership},
	{"Make it work, make it right, make it fast.", "Kent Beck", Tech},
	{"First solve the problem, then write the code.", "John Johnson", Tech},
	{"Stay hungry, stay foolish.", "Steve Jobs", Innovation},
	{"Talk is cheap. Show me the code.", "Linus Torvalds", Tech},

	// Game of Thrones
	{"Chaos isn't a pit. Chaos is a ladder.", "Littlefinger", Wisdom},
	{"The man who passes the sentence should swing the sword.", "Ned Stark", Leadership},
	{"I am not a politician, I am a queen.", "Daenerys Targaryen", Power},
	{"The night is dark and full of terrors, but the fire burns them all away.", "Melisandre", Victory},

	// Star Wars
	{"Do. Or do not. There is no try.", "Yoda", Wisdom},
	{"Never tell me the odds.", "Han Solo", Courage},
	{"The Force will be with you. Always.", "Obi-Wan Kenobi", Power},
	{"In my experience, there's no such thing as luck.", "Obi-Wan Kenobi", Wisdom},

	// Lord of the Rings
	{"All we have to decide is what to do with the time given us.", "Gandalf", Wisdom},
	{"Even the smallest person can change the course of the future.", "Galadriel", Innovation},
	{"There's some good in this world, and it's worth fighting for.", "Sam", Victory},

	// Marvel
	{"I am Iron Man.", "Tony Stark", Power},
	{"With great power comes great responsibility.", "Uncle Ben", Leadership},
	{"I can do this all day.", "Steve Rogers", Determination},

	// Tech shows and movies
	{"I am not a robot. I just speak in code.", "Silicon Valley", Tech},
	{"Sometimes it's better to be a warrior in a garden than a gardener in a war.", "Mr. Robot", Wisdom},
	{"It's not a bug, it's an undocumented feature.", "Programming Wisdom", Tech},

	// Modern tech leaders
	{"The best way to predict the future is to invent it.", "Alan Kay", Innovation},
	{"Code is poetry.", "WordPress", Tech},
	{"Think different.", "Apple", Innovation},
}

// Fallbacks returns a copy of the curated fallback quotes
func Fallbacks() (quotes []Quote) {
	quotes = make([]Quote, len(fallbackQuotes))
	copy(quotes, fallbackQuotes)

	return quotes
}
