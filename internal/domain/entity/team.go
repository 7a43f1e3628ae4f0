package entity

// Team is a roster group shown on the public site.
type Team struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Order   int          `json:"order"`
	Members []TeamMember `json:"members"`
}

// TeamMember is one person in a Team.
type TeamMember struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Image    string `json:"image,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`
}

// DocumentID implements Document.
func (t *Team) DocumentID() string {
	return t.ID
}

// FieldValue implements Document.
func (t *Team) FieldValue(field string) (any, bool) {
	switch field {
	case "id":
		return t.ID, true
	case "name":
		return t.Name, true
	case "order":
		return t.Order, true
	default:
		return nil, false
	}
}
