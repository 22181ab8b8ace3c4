package search

import (
	"fmt"
	"strings"
)

// Field: поле строки, по которому можно фильтровать и сортировать.
type Field string

const (
	FieldMemberID Field = "id"
	FieldUsername Field = "username"
	FieldAge      Field = "age"
	FieldTeamID   Field = "team_id"
	FieldTeamName Field = "team_name"
)

// TeamField сообщает, что поле принадлежит присоединённой команде.
func (f Field) TeamField() bool {
	return f == FieldTeamID || f == FieldTeamName
}

// Op: оператор сравнения в условии.
type Op string

const (
	OpEq  Op = "="
	OpGoe Op = ">="
	OpLoe Op = "<="
)

// Clause: одно сравнение вида «поле оператор значение».
type Clause struct {
	Field Field
	Op    Op
	Value any
}

func (c Clause) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}

// Row: строка, которую фильтр может проверить в памяти.
// Второе значение false означает NULL (например, команда у участника без команды).
type Row interface {
	FieldValue(f Field) (any, bool)
}

// Match проверяет строку. Сравнение с NULL всегда ложно, как в SQL.
func (c Clause) Match(r Row) bool {
	v, ok := r.FieldValue(c.Field)
	if !ok {
		return false
	}
	switch want := c.Value.(type) {
	case string:
		got, ok := v.(string)
		return ok && c.Op == OpEq && got == want
	case int:
		got, ok := toInt64(v)
		if !ok {
			return false
		}
		return compare(c.Op, got, int64(want))
	case int64:
		got, ok := toInt64(v)
		if !ok {
			return false
		}
		return compare(c.Op, got, want)
	}
	return false
}

func compare(op Op, got, want int64) bool {
	switch op {
	case OpEq:
		return got == want
	case OpGoe:
		return got >= want
	case OpLoe:
		return got <= want
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// Opt: результат функции условия: либо Some(clause), либо None.
type Opt struct {
	clause Clause
	ok     bool
}

// Some оборачивает условие.
func Some(c Clause) Opt {
	return Opt{clause: c, ok: true}
}

// None: отсутствующее условие.
func None() Opt {
	return Opt{}
}

// Get возвращает условие и признак его наличия.
func (o Opt) Get() (Clause, bool) {
	return o.clause, o.ok
}

// UsernameEq: username = ?, если имя задано.
func UsernameEq(username string) Opt {
	if !hasText(username) {
		return None()
	}
	return Some(Clause{Field: FieldUsername, Op: OpEq, Value: username})
}

// TeamNameEq: team.name = ?, если имя команды задано. Требует join с командой.
func TeamNameEq(teamName string) Opt {
	if !hasText(teamName) {
		return None()
	}
	return Some(Clause{Field: FieldTeamName, Op: OpEq, Value: teamName})
}

// AgeGoe: age >= ?, если граница задана.
func AgeGoe(ageGoe *int) Opt {
	if ageGoe == nil {
		return None()
	}
	return Some(Clause{Field: FieldAge, Op: OpGoe, Value: *ageGoe})
}

// AgeLoe: age <= ?, если граница задана.
func AgeLoe(ageLoe *int) Opt {
	if ageLoe == nil {
		return None()
	}
	return Some(Clause{Field: FieldAge, Op: OpLoe, Value: *ageLoe})
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Filter: конъюнкция условий. Пустой фильтр пропускает все строки.
type Filter struct {
	Clauses []Clause
}

// And складывает присутствующие условия через AND, пропуская None.
func And(opts ...Opt) Filter {
	var f Filter
	for _, o := range opts {
		if c, ok := o.Get(); ok {
			f.Clauses = append(f.Clauses, c)
		}
	}
	return f
}

// Assemble переводит условие поиска в фильтр.
func Assemble(cond SearchCondition) Filter {
	return And(
		UsernameEq(cond.Username),
		TeamNameEq(cond.TeamName),
		AgeGoe(cond.AgeGoe),
		AgeLoe(cond.AgeLoe),
	)
}

// AssembleWithBuilder собирает тот же фильтр, что и Assemble, но через Builder.
func AssembleWithBuilder(cond SearchCondition) Filter {
	var b Builder
	if hasText(cond.Username) {
		b.And(Clause{Field: FieldUsername, Op: OpEq, Value: cond.Username})
	}
	if hasText(cond.TeamName) {
		b.And(Clause{Field: FieldTeamName, Op: OpEq, Value: cond.TeamName})
	}
	if cond.AgeGoe != nil {
		b.And(Clause{Field: FieldAge, Op: OpGoe, Value: *cond.AgeGoe})
	}
	if cond.AgeLoe != nil {
		b.And(Clause{Field: FieldAge, Op: OpLoe, Value: *cond.AgeLoe})
	}
	return b.Filter()
}

// Builder накапливает условия по одному.
type Builder struct {
	clauses []Clause
}

func (b *Builder) And(c Clause) *Builder {
	b.clauses = append(b.clauses, c)
	return b
}

func (b *Builder) AndOpt(o Opt) *Builder {
	if c, ok := o.Get(); ok {
		b.clauses = append(b.clauses, c)
	}
	return b
}

func (b *Builder) Filter() Filter {
	return Filter{Clauses: append([]Clause(nil), b.clauses...)}
}

// IsEmpty: фильтр без условий.
func (f Filter) IsEmpty() bool {
	return len(f.Clauses) == 0
}

// Match проверяет строку всеми условиями.
func (f Filter) Match(r Row) bool {
	for _, c := range f.Clauses {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

// Uses сообщает, есть ли в фильтре условие по одному из полей.
func (f Filter) Uses(pred func(Field) bool) bool {
	for _, c := range f.Clauses {
		if pred(c.Field) {
			return true
		}
	}
	return false
}

// Key: стабильное текстовое представление фильтра, пригодное для ключа кэша.
func (f Filter) Key() string {
	parts := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		parts[i] = fmt.Sprintf("%s%s%#v", c.Field, c.Op, c.Value)
	}
	return strings.Join(parts, "&")
}
