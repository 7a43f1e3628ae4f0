package model

import "aiclub/internal/domain/entity"

// TeamModel mirrors a document of the 'teams' collection.
type TeamModel struct {
	ID      string            `firestore:"-" docstore:"id"`
	Name    string            `firestore:"name" docstore:"name"`
	Order   int               `firestore:"order" docstore:"order"`
	Members []TeamMemberModel `firestore:"members" docstore:"members"`
}

type TeamMemberModel struct {
	Name     string `firestore:"name" docstore:"name"`
	Position string `firestore:"position" docstore:"position"`
	Image    string `firestore:"image,omitempty" docstore:"image"`
	LinkedIn string `firestore:"linkedin,omitempty" docstore:"linkedin"`
	Github   string `firestore:"github,omitempty" docstore:"github"`
}

// NewTeamModel converts a team to its storage model.
func NewTeamModel(team *entity.Team) *TeamModel {
	m := &TeamModel{ID: team.ID, Name: team.Name, Order: team.Order}
	for _, member := range team.Members {
		m.Members = append(m.Members, TeamMemberModel(member))
	}

	return m
}

// ToDomain converts the model to a team.
func (m *TeamModel) ToDomain() *entity.Team {
	team := &entity.Team{ID: m.ID, Name: m.Name, Order: m.Order, Members: []entity.TeamMember{}}
	for _, member := range m.Members {
		team.Members = append(team.Members, entity.TeamMember(member))
	}

	return team
}
