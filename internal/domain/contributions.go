package domain

// DaysPerWeek is the number of day slots in every calendar column.
const DaysPerWeek = 7

// ContributionDay is a single day's contribution count.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ContributionWeek is one calendar column. The final week may hold fewer than 7 days.
type ContributionWeek []ContributionDay

// Day returns the entry at slot d, or a zero-count day when the slot is missing.
func (w ContributionWeek) Day(d int) ContributionDay {
	if d < 0 || d >= len(w) {
		return ContributionDay{}
	}
	return w[d]
}

// ContributionCalendar is a user's contribution calendar.
type ContributionCalendar struct {
	Total int                `json:"total"`
	Years []int              `json:"years,omitempty"`
	Weeks []ContributionWeek `json:"weeks"`
}
