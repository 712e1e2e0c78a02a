package order

import "github.com/idilsaglam/foodhub/internal/model"

// Step is one column of the tracking widget.
type Step struct {
	Status    model.Status
	Label     string
	Completed bool // reached (includes current)
	Current   bool
}

// Steps lays out the four statuses relative to current.
func Steps(current model.Status) []Step {
	idx := current.Index()
	out := make([]Step, len(model.Statuses))
	for i, st := range model.Statuses {
		out[i] = Step{
			Status:    st,
			Label:     st.Label(),
			Completed: idx >= 0 && i <= idx,
			Current:   i == idx,
		}
	}
	return out
}

// Progress is the filled fraction of the tracking line: index/(steps-1).
func Progress(current model.Status) float64 {
	idx := current.Index()
	if idx <= 0 {
		return 0
	}
	return float64(idx) / float64(len(model.Statuses)-1)
}
