package types

import "fmt"

// ValueDimensions is the five-axis value vector. Each axis is an unbounded signed integer.
type ValueDimensions struct {
	Empathy        int `json:"empathy"`
	Integrity      int `json:"integrity"`
	Courage        int `json:"courage"`
	Responsibility int `json:"responsibility"`
	Independence   int `json:"independence"`
}

// Add returns the component-wise sum of v and d.
func (v ValueDimensions) Add(d ValueDimensions) ValueDimensions {
	return ValueDimensions{
		Empathy:        v.Empathy + d.Empathy,
		Integrity:      v.Integrity + d.Integrity,
		Courage:        v.Courage + d.Courage,
		Responsibility: v.Responsibility + d.Responsibility,
		Independence:   v.Independence + d.Independence,
	}
}

func (v ValueDimensions) IsZero() bool {
	return v == ValueDimensions{}
}

// Summary renders the compact delta notation, e.g. "E+1 I+0 Cg+0 R+2 In+0".
func (v ValueDimensions) Summary() string {
	return fmt.Sprintf("E%+d I%+d Cg%+d R%+d In%+d",
		v.Empathy, v.Integrity, v.Courage, v.Responsibility, v.Independence)
}

// Bump adds n to the dimension named by tag and reports whether tag named one.
func (v *ValueDimensions) Bump(tag string, n int) bool {
	switch tag {
	case "empathy":
		v.Empathy += n
	case "integrity":
		v.Integrity += n
	case "courage":
		v.Courage += n
	case "responsibility":
		v.Responsibility += n
	case "independence":
		v.Independence += n
	default:
		return false
	}
	return true
}
