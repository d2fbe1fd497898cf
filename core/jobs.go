package core

// Job is one listing surfaced by a job search.
type Job struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	DayRate  string `json:"day_rate"`
}
