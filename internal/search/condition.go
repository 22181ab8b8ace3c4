// Package search собирает динамические условия поиска участников и выполняет постраничные выборки.
package search

// SearchCondition: условие поиска, в котором каждое поле необязательно.
// Пустая строка и nil означают «не фильтровать по этому полю».
type SearchCondition struct {
	Username string `json:"username,omitempty"`
	TeamName string `json:"team_name,omitempty"`
	AgeGoe   *int   `json:"age_goe,omitempty"`
	AgeLoe   *int   `json:"age_loe,omitempty"`
}

// SimpleCondition: упрощённый вариант условия: границы возраста <= 0 считаются незаданными.
// Отфильтровать по возрасту 0 в этом варианте нельзя.
type SimpleCondition struct {
	Username string
	TeamName string
	AgeGoe   int
	AgeLoe   int
}

// Condition переводит упрощённое условие в условие с явными nil.
func (c SimpleCondition) Condition() SearchCondition {
	return SearchCondition{
		Username: c.Username,
		TeamName: c.TeamName,
		AgeGoe:   positive(c.AgeGoe),
		AgeLoe:   positive(c.AgeLoe),
	}
}

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

// IsEmpty сообщает, что ни одно поле условия не задано.
func (c SearchCondition) IsEmpty() bool {
	return c.Username == "" && c.TeamName == "" && c.AgeGoe == nil && c.AgeLoe == nil
}
