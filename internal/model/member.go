package model

// Member описывает участника. TeamID может быть nil, если участник не состоит в команде.
// Team заполняется только при явном запросе (includeTeam), иначе остаётся nil.
type Member struct {
	ID       int64  `json:"member_id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamID   *int64 `json:"team_id,omitempty"`
	Team     *Team  `json:"team,omitempty"`
}

// MemberTeam: плоская проекция участника вместе с командой (результат left join).
// Для участника без команды TeamID и TeamName равны nil.
type MemberTeam struct {
	MemberID int64   `json:"member_id"`
	Username string  `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

// NewMemberTeam собирает проекцию из участника и (возможно отсутствующей) команды.
func NewMemberTeam(m Member, t *Team) MemberTeam {
	mt := MemberTeam{
		MemberID: m.ID,
		Username: m.Username,
		Age:      m.Age,
	}
	if t != nil {
		id, name := t.ID, t.Name
		mt.TeamID = &id
		mt.TeamName = &name
	}
	return mt
}
