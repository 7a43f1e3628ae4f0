package impl

import (
	"testing"

	"aiclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testKnowledgeBase() *entity.KnowledgeBase {
	return &entity.KnowledgeBase{
		Club: entity.ClubInfo{
			Name:            "Artificial Intelligence Club",
			ShortName:       "AI Club",
			About:           "We are students who like machine learning.",
			Email:           "hello@aiclub.dev",
			Location:        "Room 204",
			MeetingSchedule: "Every Thursday at 6pm",
			JoinURL:         "https://aiclub.dev/join",
			JoinSteps:       []string{"Fill in the form", "Come to a meeting"},
			Activities:      []string{"workshops", "hackathons"},
			Socials:         entity.SocialLinks{Instagram: "https://instagram.com/aiclub"},
		},
		Teams: []entity.KnowledgeTeam{
			{Name: "Board", Members: []entity.KnowledgeMember{{Name: "Ada", Role: "President"}}},
		},
	}
}

func TestFAQService_Answer(t *testing.T) {
	srv := NewFAQService(testKnowledgeBase())

	tests := []struct {
		name     string
		message  string
		wantRule string
	}{
		{name: "join", message: "How do I join?", wantRule: "join"},
		{name: "membership", message: "Can I become a MEMBER", wantRule: "join"},
		{name: "events", message: "Any upcoming workshops?", wantRule: "events"},
		{name: "teams", message: "Who is on the board?", wantRule: "teams"},
		{name: "projects", message: "Show me your projects", wantRule: "projects"},
		{name: "blogs", message: "Do you have a blog?", wantRule: "blogs"},
		{name: "contact", message: "How can I contact you?", wantRule: "contact"},
		{name: "about", message: "Tell me about the club", wantRule: "about"},
		{name: "socials", message: "Are you on Instagram?", wantRule: "socials"},
		{name: "greeting", message: "Hello!", wantRule: "greeting"},
		{name: "short greeting", message: "  hi  ", wantRule: "greeting"},
		{name: "thanks", message: "Thanks a lot", wantRule: "thanks"},
		{name: "first match wins", message: "I want to join the hackathon", wantRule: "join"},
		{name: "greeting needs a whole word", message: "this which", wantRule: faqFallbackRule},
		{name: "gibberish", message: "asdfgh qwerty", wantRule: faqFallbackRule},
		{name: "empty", message: "   ", wantRule: faqFallbackRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := srv.Answer(tt.message)

			assert.Equal(t, tt.wantRule, got.Rule)
			assert.NotEmpty(t, got.Reply)
		})
	}
}

func TestFAQService_AnswerIsDeterministic(t *testing.T) {
	srv := NewFAQService(testKnowledgeBase())

	first := srv.Answer("How to join?")
	for range 5 {
		assert.Equal(t, first, srv.Answer("How to join?"))
	}

	assert.Equal(t, "Joining Artificial Intelligence Club is easy:\n"+
		"1. Fill in the form\n"+
		"2. Come to a meeting\n"+
		"Sign up here: https://aiclub.dev/join", first.Reply)
}

func TestFAQService_Replies(t *testing.T) {
	srv := NewFAQService(testKnowledgeBase())

	assert.Equal(t, "We meet every Thursday at 6pm at Room 204. Check the Events page for upcoming workshops, talks and hackathons, and their registration links.",
		srv.Answer("when is the next event").Reply)
	assert.Equal(t, "Artificial Intelligence Club is run by these teams:\n- Board: Ada (President)",
		srv.Answer("who runs the club").Reply)
	assert.Equal(t, "Follow us!\nInstagram: https://instagram.com/aiclub", srv.Answer("social media?").Reply)
	assert.Contains(t, srv.Answer("gibberish").Reply, "How can I contact AI Club?")
}

func TestFAQService_EmptyTeams(t *testing.T) {
	kb := testKnowledgeBase()
	kb.Teams = nil
	srv := NewFAQService(kb)

	assert.Equal(t, "Artificial Intelligence Club is run by student volunteers. See the Teams page to meet them.",
		srv.Answer("who is the president").Reply)
}
