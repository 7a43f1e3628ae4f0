package entity

// KnowledgeBase is the static club information the FAQ responder answers from.
type KnowledgeBase struct {
	Club  ClubInfo        `yaml:"club"`
	Teams []KnowledgeTeam `yaml:"teams"`
}

// ClubInfo describes the club itself.
type ClubInfo struct {
	Name            string      `yaml:"name"`
	ShortName       string      `yaml:"shortName"`
	Tagline         string      `yaml:"tagline"`
	About           string      `yaml:"about"`
	Founded         string      `yaml:"founded"`
	Email           string      `yaml:"email"`
	Location        string      `yaml:"location"`
	MeetingSchedule string      `yaml:"meetingSchedule"`
	JoinURL         string      `yaml:"joinUrl"`
	JoinSteps       []string    `yaml:"joinSteps"`
	Activities      []string    `yaml:"activities"`
	Socials         SocialLinks `yaml:"socials"`
	Website         string      `yaml:"website"`
}

// KnowledgeTeam is a team roster as quoted by the FAQ responder.
type KnowledgeTeam struct {
	Name    string            `yaml:"name"`
	Members []KnowledgeMember `yaml:"members"`
}

// KnowledgeMember is one roster line.
type KnowledgeMember struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}
