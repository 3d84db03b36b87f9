// Package quote fetches short quotes from public quote apis to use as a slack status.
// Quotes are filtered to keep them short and upbeat, categorized to help pick a matching
// emoji and, when no api returns a usable quote, replaced by one from a curated list.
package quote

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Categories
const (
	Tech          = "tech"
	Innovation    = "innovation"
	Leadership    = "leadership"
	Wisdom        = "wisdom"
	Power         = "power"
	Victory       = "victory"
	Journey       = "journey"
	Courage       = "courage"
	Determination = "determination"
	General       = "general"
)

// Quote holds a quote, its author and the category it was classified as
type Quote struct {
	Text     string
	Author   string
	Category string
}

// String returns the quote formatted for a status ("text - author")
func (q Quote) String() string {
	if q.Author == "" {
		return q.Text
	}

	return fmt.Sprintf("%s - %s", q.Text, q.Author)
}

type category struct {
	name     string
	keywords []string
}

// categories are evaluated in order, the first one with a matching keyword wins
var categories = []category{
	{Tech, []string{"code", "program", "developer", "engineer", "system", "data"}},
	{Innovation, []string{"innovate", "create", "invent", "build", "design", "future"}},
	{Leadership, []string{"lead", "guide", "inspire", "achieve", "vision", "success"}},
	{Wisdom, []string{"learn", "know", "understand", "truth", "mind", "think"}},
	{Power, []string{"strength", "force", "power", "strong", "mighty", "valor"}},
	{Victory, []string{"win", "conquer", "achieve", "triumph", "succeed", "accomplish"}},
	{Journey, []string{"path", "way", "road", "journey", "quest", "adventure"}},
}

var positiveThemes = []string{
	"innovation", "leadership", "technology", "success", "growth",
	"courage", "wisdom", "power", "victory", "excellence",
	"creativity", "determination", "strength", "progress", "vision",
	"achievement", "inspiration", "discovery", "breakthrough", "triumph",
}

var blockedTopics = []string{
	"death", "dying", "mortality", "kill", "pain", "suffer",
	"black", "white", "race", "gender", "political", "religion",
	"racist", "sexist", "offensive", "controversial", "hate",
	"drug", "alcohol", "nsfw", "dating", "gambling", "war",
	"violence", "crime", "fear", "anxiety", "depression",
	"fail", "negative", "darkness", "troubled",
}

// Categorize returns the category of a quote's text or General if no category matches
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, c := range categories {
		if containsAny(lower, c.keywords) {
			return c.name
		}
	}

	return General
}

// IsAppropriate returns true if the text fits in maxLength characters once formatted with an
// author separator, doesn't touch on any blocked topic and carries at least one positive theme
func IsAppropriate(text string, maxLength int) bool {
	if utf8.RuneCountInString(text+" - ") > maxLength {
		return false
	}

	lower := strings.ToLower(text)
	if containsAny(lower, blockedTopics) {
		return false
	}

	return containsAny(lower, positiveThemes)
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
