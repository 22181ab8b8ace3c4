// Package model содержит доменные структуры команд, участников и их проекций.
package model

// Team описывает команду. Список участников в команде не хранится:
// он вычисляется хранилищем через обратный индекс team_id -> member_id.
type Team struct {
	ID   int64  `json:"team_id"`
	Name string `json:"team_name"`
}
