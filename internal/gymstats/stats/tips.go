package stats

import (
	"fmt"
	"math"
)

const maxTips = 8

type Tip struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

func atLeast(min int, share float64, total int) int {
	return max(min, int(math.Round(share*float64(total))))
}

// SplitTips returns short hints about the training split of a period.
func SplitTips(s PeriodStats, period Period) []Tip {
	if s.TotalExercises == 0 {
		return []Tip{}
	}

	periodLabel := "weekly"
	if period == PeriodMonth {
		periodLabel = "monthly"
	}

	tips := []Tip{
		{Key: "def-strength", Text: "Strength counts every group except Cardio and Mobility."},
		{Key: "def-cond", Text: "Conditioning counts only Cardio and Mobility exercises."},
	}

	if s.groupHits("core") == 0 {
		tips = append(tips, Tip{Key: "miss-core", Text: "No Core work logged. A couple of quick sets help stability."})
	}
	if s.groupHits("mobility") == 0 {
		tips = append(tips, Tip{Key: "miss-mob", Text: "No Mobility logged. Try a short cooldown after training."})
	}
	if s.groupHits("cardio") == 0 && s.ConditioningCount == 0 {
		tips = append(tips, Tip{Key: "miss-cardio", Text: "No Cardio logged. An easy zone 2 session counts too."})
	}

	switch {
	case s.StrengthCount > 0 && s.ConditioningCount > 0:
		tips = append(tips, Tip{Key: "balance-ok", Text: "Good mix of strength and conditioning."})
	case s.StrengthCount > 0:
		tips = append(tips, Tip{Key: "balance-strength-only", Text: "Strength only so far. Consider some mobility or cardio."})
	case s.ConditioningCount > 0:
		tips = append(tips, Tip{Key: "balance-cond-only", Text: "Conditioning only so far. Some strength work keeps muscle."})
	}

	switch s.Intensity() {
	case IntensityHigh:
		tips = append(tips, Tip{Key: "int-high", Text: fmt.Sprintf("High %s intensity. Sleep and recovery matter now.", periodLabel)})
	case IntensityMedium:
		tips = append(tips, Tip{Key: "int-med", Text: "Solid intensity. Stay consistent."})
	default:
		tips = append(tips, Tip{Key: "int-low", Text: "Low intensity. Fine for a deload, otherwise add some load."})
	}

	distinctGroups := len(s.MuscleGroups)
	if distinctGroups >= 6 {
		tips = append(tips, Tip{Key: "variety-high", Text: fmt.Sprintf("Great variety: %d muscle groups trained.", distinctGroups)})
	} else if distinctGroups <= 2 {
		tips = append(tips, Tip{Key: "variety-low", Text: fmt.Sprintf("Very focused block: only %d muscle groups trained.", distinctGroups)})
	}

	if s.groupHits("legs")+s.groupHits("glutes") >= atLeast(6, 0.35, s.TotalExercises) {
		tips = append(tips, Tip{Key: "lowerbody", Text: "Lower body heavy period for legs and glutes."})
	}
	if s.groupHits("chest")+s.groupHits("shoulders") >= atLeast(5, 0.3, s.TotalExercises) {
		tips = append(tips, Tip{Key: "push", Text: "Push emphasis on chest and shoulders."})
	}
	if s.groupHits("back") >= atLeast(4, 0.25, s.TotalExercises) {
		tips = append(tips, Tip{Key: "pull", Text: fmt.Sprintf("Pull emphasis: strong %s back volume.", periodLabel)})
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
