package matches

import "strings"

// Category is the bucket a match falls into.
type Category string

const (
	CategoryLive     Category = "live"
	CategoryPrematch Category = "prematch"
	CategoryFinished Category = "finished"
)

var liveStatuses = map[string]struct{}{
	"LIVE":    {},
	"INPLAY":  {},
	"IN_PLAY": {},
}

var finishedStatuses = map[string]struct{}{
	"FINISHED":  {},
	"FINAL":     {},
	"FT":        {},
	"FULL_TIME": {},
	"ENDED":     {},
	"END":       {},
	"CLOSED":    {},
	"RESULT":    {},
}

// Categories partitions a snapshot's matches. Every match appears in exactly one list.
type Categories struct {
	Live     []Match `json:"live"`
	Prematch []Match `json:"prematch"`
	Finished []Match `json:"finished"`
}

// Total returns the number of categorized matches.
func (c Categories) Total() int {
	return len(c.Live) + len(c.Prematch) + len(c.Finished)
}

// Counts returns the size of each bucket.
func (c Categories) Counts() map[Category]int {
	return map[Category]int{
		CategoryLive:     len(c.Live),
		CategoryPrematch: len(c.Prematch),
		CategoryFinished: len(c.Finished),
	}
}

// NormalizeStatus trims and upper-cases a raw status string.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// Classify decides the bucket for a single match. The in-play flag wins over any status;
// unknown statuses land in prematch.
func Classify(m Match) Category {
	status := NormalizeStatus(m.Status)
	if m.Iplay {
		return CategoryLive
	}
	if _, ok := liveStatuses[status]; ok {
		return CategoryLive
	}
	if _, ok := finishedStatuses[status]; ok {
		return CategoryFinished
	}
	return CategoryPrematch
}

// Categorize splits the snapshot's matches into live, prematch and finished, keeping feed order.
func Categorize(s Snapshot) Categories {
	out := Categories{
		Live:     []Match{},
		Prematch: []Match{},
		Finished: []Match{},
	}
	for _, m := range s.Matches() {
		switch Classify(m) {
		case CategoryLive:
			out.Live = append(out.Live, m)
		case CategoryFinished:
			out.Finished = append(out.Finished, m)
		default:
			out.Prematch = append(out.Prematch, m)
		}
	}
	return out
}
