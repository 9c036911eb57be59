package services

// ActivityKind enumerates the user actions that move the recovery
// thermometer. Adding a kind means adding a case to PointsFor.
type ActivityKind string

const (
	ActivityMood       ActivityKind = "mood"
	ActivityDevotional ActivityKind = "devotional"
	ActivityTask       ActivityKind = "task"
	ActivitySobriety   ActivityKind = "sobriety"
	ActivityMotivation ActivityKind = "motivation"
	ActivityTrigger    ActivityKind = "trigger"
	ActivityGratitude  ActivityKind = "gratitude"
)

// Mood labels as the app sends them. Negative moods cost points so the
// thermometer can drop.
var moodPoints = map[string]int{
	"Ótimo":       10,
	"Bem":         5,
	"Desmotivado": -3,
	"Triste":      -5,
	"Irritado":    -10,
}

// The daily check-in screen grew its own label scale, different from the
// mood table above. Kept separate on purpose — TODO(product): decide which
// scale survives before merging them.
var checkInMoodPoints = map[string]int{
	"Ótimo":     10,
	"Bem":       5,
	"Neutro":    0,
	"Desafiado": -3,
	"Difícil":   -5,
}

// PointsFor returns the point value for an activity. For the mood kind the
// value comes from the mood label; every other kind has a fixed value.
// Unknown kinds and unknown mood labels are worth 0 rather than an error so
// a stale client can never block a submission.
func PointsFor(kind ActivityKind, moodLabel string) int {
	switch kind {
	case ActivityMood:
		return moodPoints[moodLabel]
	case ActivityDevotional:
		return 30
	case ActivityMotivation, ActivitySobriety:
		return 20
	case ActivityTrigger, ActivityGratitude:
		return 15
	case ActivityTask:
		return 10
	}
	return 0
}

// CheckInPoints scores a daily check-in label. Unknown labels are worth 0.
func CheckInPoints(label string) int { return checkInMoodPoints[label] }

func ValidKind(kind ActivityKind) bool {
	switch kind {
	case ActivityMood, ActivityDevotional, ActivityTask, ActivitySobriety,
		ActivityMotivation, ActivityTrigger, ActivityGratitude:
		return true
	}
	return false
}
