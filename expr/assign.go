package expr

import "github.com/teranos/jcodemodel/format"

// Assignment is lhs op rhs. In statement position it ends with a semicolon.
type Assignment struct {
	lhs AssignmentTarget
	op  string
	rhs Expression
}

func assign(lhs AssignmentTarget, op string, rhs Expression) *Assignment {
	return &Assignment{lhs: lhs, op: op, rhs: rhs}
}

func Assign(lhs AssignmentTarget, rhs Expression) *Assignment       { return assign(lhs, "=", rhs) }
func AssignPlus(lhs AssignmentTarget, rhs Expression) *Assignment   { return assign(lhs, "+=", rhs) }
func AssignMinus(lhs AssignmentTarget, rhs Expression) *Assignment  { return assign(lhs, "-=", rhs) }
func AssignTimes(lhs AssignmentTarget, rhs Expression) *Assignment  { return assign(lhs, "*=", rhs) }
func AssignDivide(lhs AssignmentTarget, rhs Expression) *Assignment { return assign(lhs, "/=", rhs) }

func (a *Assignment) Op() string { return a.op }

func (a *Assignment) Generate(f *format.Formatter) {
	f.Generable(a.lhs).Print(" ").Print(a.op).Print(" ").Generable(a.rhs)
}

func (a *Assignment) State(f *format.Formatter) {
	f.Generable(a).Print(";").Newline()
}
