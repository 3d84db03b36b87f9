// Package emoji matches quote categories with slack emoji codes
package emoji

import (
	"math/rand"
	"time"

	"github.com/alexandre-normand/slackstatus/quote"
)

var emojisByCategory = map[string][]string{
	quote.Tech:       {":computer:", ":zap:", ":robot_face:", ":rocket:", ":bulb:"},
	quote.Innovation: {":sparkles:", ":dizzy:", ":star2:", ":star:", ":crystal_ball:"},
	quote.Leadership: {":crown:", ":dart:", ":lion_face:", ":crossed_swords:", ":shield:"},
	quote.Wisdom:     {":brain:", ":books:", ":mortar_board:", ":herb:", ":crystal_ball:"},
	quote.Power:      {":zap:", ":muscle:", ":fire:", ":crossed_swords:", ":sparkles:"},
	quote.Victory:    {":trophy:", ":crown:", ":star:", ":star2:", ":fire:"},
	quote.Journey:    {":compass:", ":world_map:", ":star:", ":stars:", ":rocket:"},
	quote.General:    {":dizzy:", ":sparkles:", ":star:", ":star2:", ":gift_heart:"},
}

// Matcher picks an emoji matching the mood of a quote category
type Matcher struct {
	random *rand.Rand
}

// NewMatcher returns a new Matcher. A nil random generator is replaced by one seeded with the current time
func NewMatcher(r *rand.Rand) (m *Matcher) {
	m = new(Matcher)
	m.random = r
	if m.random == nil {
		m.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return m
}

// Emoji returns a random emoji code for the category. Categories without emojis
// of their own get one from the general category
func (m *Matcher) Emoji(category string) string {
	emojis, ok := emojisByCategory[category]
	if !ok {
		emojis = emojisByCategory[quote.General]
	}

	return emojis[m.random.Intn(len(emojis))]
}

// emojis returns the emojis a category can be matched with
func emojis(category string) []string {
	if e, ok := emojisByCategory[category]; ok {
		return append([]string(nil), e...)
	}

	return append([]string(nil), emojisByCategory[quote.General]...)
}
