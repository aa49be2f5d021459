package workouts

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// rows created in the editor start in this group
const editorDefaultGroup = "Chest"

// FormValue is a raw editor field. It decodes from a JSON string, number or null.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = FormValue(val)
	case float64:
		*v = FormValue(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return fmt.Errorf("form value: unsupported %T", raw)
	}
	return nil
}

// Float parses the value permissively. Empty or unparsable input gives nil.
func (v FormValue) Float() *float64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Int is like Float but also gives nil for non-integral values.
func (v FormValue) Int() *int {
	f := v.Float()
	if f == nil || *f != math.Trunc(*f) {
		return nil
	}
	i := int(*f)
	return &i
}

func formInt(p *int) FormValue {
	if p == nil {
		return ""
	}
	return FormValue(strconv.Itoa(*p))
}

func formFloat(p *float64) FormValue {
	if p == nil {
		return ""
	}
	return FormValue(strconv.FormatFloat(*p, 'f', -1, 64))
}

type RowExercise struct {
	Name    string    `json:"name"`
	Group   string    `json:"group"`
	Sets    FormValue `json:"sets"`
	Reps    FormValue `json:"reps"`
	Minutes FormValue `json:"minutes"`
	Weight  FormValue `json:"weight"`
}

// Row is one editor line: a single exercise, or a superset with A and B.
type Row struct {
	Superset bool         `json:"superset"`
	SuperID  string       `json:"superId,omitempty"`
	A        RowExercise  `json:"a"`
	B        *RowExercise `json:"b,omitempty"`
}

func rowExerciseOf(ex Exercise) RowExercise {
	group := ex.Group
	if group == "" {
		group = editorDefaultGroup
	}
	return RowExercise{
		Name:    ex.Name,
		Group:   group,
		Sets:    formInt(ex.Sets),
		Reps:    formInt(ex.Reps),
		Minutes: formInt(ex.Minutes),
		Weight:  formFloat(ex.Weight),
	}
}

func pairedWithNext(exercises []Exercise, i int) bool {
	if i+1 >= len(exercises) {
		return false
	}
	a, b := exercises[i].SuperID, exercises[i+1].SuperID
	return a != nil && b != nil && *a != "" && *a == *b
}

// Inflate groups a flat exercise list into editor rows. Only two adjacent
// exercises with the same pairing id become a superset row.
func Inflate(exercises []Exercise) []Row {
	rows := make([]Row, 0, len(exercises))
	for i := 0; i < len(exercises); i++ {
		if pairedWithNext(exercises, i) {
			b := rowExerciseOf(exercises[i+1])
			rows = append(rows, Row{
				Superset: true,
				SuperID:  *exercises[i].SuperID,
				A:        rowExerciseOf(exercises[i]),
				B:        &b,
			})
			i++
			continue
		}
		rows = append(rows, Row{A: rowExerciseOf(exercises[i])})
	}
	return rows
}

func NewSuperID() string {
	return uuid.NewString()
}

// Flatten turns editor rows back into a flat exercise list. Done state is
// carried over from previous by position: a superset row takes the next two
// entries, a single row the next one. Inserting, removing or reordering rows
// therefore shifts done state onto other exercises.
func Flatten(rows []Row, previous []Exercise, newSuperID func() string) []Exercise {
	if newSuperID == nil {
		newSuperID = NewSuperID
	}

	out := make([]Exercise, 0, len(rows)*2)
	idx := 0
	carry := func(ex Exercise) Exercise {
		if idx < len(previous) {
			ex.Done = previous[idx].Done
			ex.DoneAt = previous[idx].DoneAt
		}
		idx++
		return ex
	}

	for _, row := range rows {
		if row.Superset && row.B != nil {
			superID := row.SuperID
			if superID == "" {
				superID = newSuperID()
			}
			a := exerciseOf(row.A)
			a.SuperID = &superID
			b := exerciseOf(*row.B)
			b.SuperID = &superID
			out = append(out, carry(a), carry(b))
			continue
		}
		out = append(out, carry(exerciseOf(row.A)))
	}
	return out
}

func exerciseOf(row RowExercise) Exercise {
	group := row.Group
	if group == "" {
		group = DefaultGroup
	}
	return Exercise{
		Name:    strings.TrimSpace(row.Name),
		Group:   group,
		Sets:    row.Sets.Int(),
		Reps:    row.Reps.Int(),
		Minutes: row.Minutes.Int(),
		Weight:  row.Weight.Float(),
	}
}
