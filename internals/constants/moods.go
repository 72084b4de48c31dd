package constants

// Mood is the category a daily question belongs to.
type Mood string

const (
	MoodSad   Mood = "sad"
	MoodAngry Mood = "angry"
	MoodHappy Mood = "happy"
)

// MoodList is the fixed iteration order used by rotation and answer counts.
var MoodList = []Mood{MoodSad, MoodAngry, MoodHappy}

func (m Mood) Valid() bool {
	for _, v := range MoodList {
		if v == m {
			return true
		}
	}
	return false
}

const MoodOneOf = "sad angry happy"
