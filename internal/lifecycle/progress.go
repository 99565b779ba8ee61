package lifecycle

import (
	"fmt"
	"strings"
)

// StepState is the visual state of one step relative to the current one.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

type StepView struct {
	Number int       `json:"number"`
	Label  string    `json:"label"`
	State  StepState `json:"state"`
}

// Progress is the view model the step bar renders from. When Cancelled is
// set the bar is not rendered at all; Steps is empty and FillPercent is 0.
type Progress struct {
	Status      Status     `json:"status"`
	Cancelled   bool       `json:"cancelled"`
	CurrentStep int        `json:"current_step"`
	FillPercent float64    `json:"fill_percent"`
	Steps       []StepView `json:"steps,omitempty"`
}

// BuildProgress projects a status onto the fixed step bar. Cancellation is
// a hard branch, not a step-0 rendering of the normal bar. A step of 0
// from an unrecognized status clamps the fill to 0 instead of going
// negative.
func BuildProgress(s Status) Progress {
	if s == StatusCancelled {
		return Progress{Status: s, Cancelled: true}
	}

	current := StepNumber(s)
	fill := float64(current-1) / float64(TotalSteps-1) * 100
	if fill < 0 {
		fill = 0
	}

	steps := make([]StepView, 0, TotalSteps)
	for _, step := range Steps {
		state := StepPending
		switch {
		case step.Number < current:
			state = StepCompleted
		case step.Number == current:
			state = StepCurrent
		}
		steps = append(steps, StepView{
			Number: step.Number,
			Label:  step.Label,
			State:  state,
		})
	}

	return Progress{
		Status:      s,
		CurrentStep: current,
		FillPercent: fill,
		Steps:       steps,
	}
}

// RenderText draws the progress as a single text line, for logs and CLI
// output. Completed and current steps are marked, pending ones are not.
func (p Progress) RenderText() string {
	if p.Cancelled {
		return "order cancelled"
	}

	var b strings.Builder
	for i, step := range p.Steps {
		if i > 0 {
			b.WriteString(" -> ")
		}
		switch step.State {
		case StepCompleted:
			fmt.Fprintf(&b, "[x] %s", step.Label)
		case StepCurrent:
			fmt.Fprintf(&b, "[*] %s", step.Label)
		default:
			fmt.Fprintf(&b, "[ ] %s", step.Label)
		}
	}
	fmt.Fprintf(&b, " (%.0f%%)", p.FillPercent)
	return b.String()
}
