package shape

import (
	"strconv"

	"github.com/coregx/tupleregex/internal/errs"
)

// Slot is the replacement template for one group. An unset slot leaves the
// group's text as it is.
type Slot struct {
	Template string
	Set      bool
}

// Fill returns a slot replacing its group with template.
func Fill(template string) Slot {
	return Slot{Template: template, Set: true}
}

// Keep returns a slot leaving its group untouched.
func Keep() Slot {
	return Slot{}
}

// Value is a replacement value in one of the write shapes. Its slots follow
// the read-side index convention of its kind: a scalar targets the whole
// match, a tuple targets groups 1..n and a list targets groups 0..n.
type Value struct {
	kind  Kind
	slots []Slot
	skip  bool
}

// Template returns a scalar value replacing the whole match.
func Template(template string) Value {
	return Value{kind: KindScalar, slots: []Slot{Fill(template)}}
}

// Templates returns a tuple value replacing groups 1..len(templates).
func Templates(templates ...string) Value {
	slots := make([]Slot, len(templates))
	for i, t := range templates {
		slots[i] = Fill(t)
	}
	return Value{kind: KindTuple, slots: slots}
}

// TemplateSlots returns a tuple value whose unset slots keep their groups.
func TemplateSlots(slots ...Slot) Value {
	return Value{kind: KindTuple, slots: append([]Slot(nil), slots...)}
}

// ListSlots returns a list value: slot 0 targets the whole match, slot i
// targets group i.
func ListSlots(slots ...Slot) Value {
	return Value{kind: KindList, slots: append([]Slot(nil), slots...)}
}

// Skip returns a value leaving the whole match untouched. In a selective
// replacement it consumes one match without changing it.
func Skip() Value {
	return Value{kind: KindScalar, skip: true}
}

// Kind returns the value's shape kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSkip reports whether v leaves its match untouched.
func (v Value) IsSkip() bool {
	return v.skip
}

// String describes the value for diagnostics.
func (v Value) String() string {
	if v.skip {
		return "skip"
	}
	s := v.kind.String() + "["
	for i, slot := range v.slots {
		if i > 0 {
			s += " "
		}
		if slot.Set {
			s += strconv.Quote(slot.Template)
		} else {
			s += "_"
		}
	}
	return s + "]"
}

// Detuple returns one slot per group position of v, in v's index convention.
func Detuple(v Value) []Slot {
	if v.skip {
		return nil
	}
	return append([]Slot(nil), v.slots...)
}

// Target pairs a group number with the template that replaces it.
type Target struct {
	Group    int
	Template string
}

// Targets resolves v against a pattern with groups capture groups. Unset
// slots are dropped; tuple and list values longer than the pattern are
// clipped to its groups.
func Targets(v Value, groups int) ([]Target, error) {
	slots := Detuple(v)
	if len(slots) == 0 {
		return nil, nil
	}
	var out []Target
	switch v.kind {
	case KindScalar, KindOptional:
		out = appendTarget(out, 0, slots[0])
	case KindTuple:
		if groups == 0 {
			return appendTarget(out, 0, slots[0]), nil
		}
		for i := 1; i <= min(len(slots), groups); i++ {
			out = appendTarget(out, i, slots[i-1])
		}
	case KindList:
		for i := 0; i <= min(len(slots)-1, groups); i++ {
			out = appendTarget(out, i, slots[i])
		}
	default:
		return nil, errs.ShapeMismatch(len(slots), groups, v.kind.String()+" value")
	}
	return out, nil
}

// GroupTargets resolves v against group g alone, using v's first slot.
// g must name a group of the pattern.
func GroupTargets(v Value, g int, groups int) ([]Target, error) {
	if err := CheckGroup(g, groups); err != nil {
		return nil, err
	}
	slots := Detuple(v)
	if len(slots) == 0 {
		return nil, nil
	}
	return appendTarget(nil, g, slots[0]), nil
}

// CheckGroup reports ErrShapeMismatch unless 0 <= g <= groups.
func CheckGroup(g int, groups int) error {
	if g < 0 || g > groups {
		return errs.ShapeMismatch(1, groups, "group "+strconv.Itoa(g))
	}
	return nil
}

func appendTarget(out []Target, group int, slot Slot) []Target {
	if !slot.Set {
		return out
	}
	return append(out, Target{Group: group, Template: slot.Template})
}
