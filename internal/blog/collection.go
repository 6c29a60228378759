// collection.go - Ordering and grouping of posts
package blog

import (
	"sort"
	"time"
)

// Collection is the ordered set of all posts for one build, newest first,
// with year and year/month groupings derived from the same order.
type Collection struct {
	Posts []*Post
	Years []*YearGroup
}

type YearGroup struct {
	Year   int
	Posts  []*Post
	Months []*MonthGroup
}

type MonthGroup struct {
	Year  int
	Month time.Month
	// Label is the human-readable group name, e.g. "June 2021".
	Label string
	Posts []*Post
}

// Organize sorts posts by date descending (ties keep their input order) and
// groups them by year and by year+month. Pure and total: no errors possible
// for valid posts, and the union of every group equals the input.
func Organize(posts []*Post) *Collection {
	ordered := make([]*Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	c := &Collection{Posts: ordered}
	yearIdx := make(map[int]*YearGroup)
	monthIdx := make(map[[2]int]*MonthGroup)

	for _, p := range ordered {
		y, m := p.Date.Year(), p.Date.Month()

		yg, ok := yearIdx[y]
		if !ok {
			yg = &YearGroup{Year: y}
			yearIdx[y] = yg
			c.Years = append(c.Years, yg)
		}
		yg.Posts = append(yg.Posts, p)

		key := [2]int{y, int(m)}
		mg, ok := monthIdx[key]
		if !ok {
			mg = &MonthGroup{
				Year:  y,
				Month: m,
				Label: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
			}
			monthIdx[key] = mg
			yg.Months = append(yg.Months, mg)
		}
		mg.Posts = append(mg.Posts, p)
	}

	return c
}
