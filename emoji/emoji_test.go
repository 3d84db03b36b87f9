package emoji_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/alexandre-normand/slackstatus/emoji"
	"github.com/alexandre-normand/slackstatus/quote"
	"github.com/stretchr/testify/assert"
)

var emojiCode = regexp.MustCompile(`^:[a-z0-9_+-]+:$`)

func TestEmojiMatchesCategory(t *testing.T) {
	m := emoji.NewMatcher(rand.New(rand.NewSource(42)))

	for _, category := range []string{quote.Tech, quote.Innovation, quote.Leadership, quote.Wisdom, quote.Power, quote.Victory, quote.Journey, quote.General} {
		t.Run(category, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				e := m.Emoji(category)

				assert.Contains(t, emoji.Emojis(category), e)
				assert.Regexp(t, emojiCode, e)
			}
		})
	}
}

func TestEmojiForUnknownCategoryUsesGeneral(t *testing.T) {
	m := emoji.NewMatcher(nil)

	for _, category := range []string{quote.Courage, quote.Determination, "", "unknown"} {
		t.Run(category, func(t *testing.T) {
			assert.Contains(t, emoji.Emojis(quote.General), m.Emoji(category))
		})
	}
}

func TestEmojisReturnsCopy(t *testing.T) {
	e := emoji.Emojis(quote.Tech)
	e[0] = ":poop:"

	assert.NotContains(t, emoji.Emojis(quote.Tech), ":poop:")
}
