package impl

import (
	"fmt"
	"strings"
	"unicode"

	"aiclub/internal/domain/entity"
	"aiclub/internal/usecase"
)

const faqFallbackRule = "fallback"

// faqRule pairs a predicate over the normalized message with the reply it selects.
type faqRule struct {
	name  string
	match func(msg faqMessage) bool
	reply string
}

// faqMessage is a lower-cased, trimmed message and its words.
type faqMessage struct {
	text  string
	words map[string]struct{}
}

func newFAQMessage(raw string) faqMessage {
	text := strings.ToLower(strings.TrimSpace(raw))
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		words[w] = struct{}{}
	}

	return faqMessage{text: text, words: words}
}

func containsAny(substrings ...string) func(faqMessage) bool {
	return func(msg faqMessage) bool {
		for _, s := range substrings {
			if strings.Contains(msg.text, s) {
				return true
			}
		}

		return false
	}
}

// hasWord matches whole words only, so "hi" never matches "this" or "which".
func hasWord(words ...string) func(faqMessage) bool {
	return func(msg faqMessage) bool {
		for _, w := range words {
			if _, ok := msg.words[w]; ok {
				return true
			}
		}

		return false
	}
}

// faqService implements the FAQUsecase interface. Rules are evaluated in
// table order and the first match wins; reordering the table changes answers.
type faqService struct {
	rules    []faqRule
	fallback string
}

// NewFAQService builds the rule table from the knowledge base.
func NewFAQService(kb *entity.KnowledgeBase) usecase.FAQUsecase {
	return &faqService{
		rules:    buildFAQRules(kb),
		fallback: fallbackReply(kb),
	}
}

// Answer returns the reply of the first matching rule.
func (srv *faqService) Answer(message string) usecase.FAQReply {
	msg := newFAQMessage(message)
	if msg.text != "" {
		for _, rule := range srv.rules {
			if rule.match(msg) {
				return usecase.FAQReply{Reply: rule.reply, Rule: rule.name}
			}
		}
	}

	return usecase.FAQReply{Reply: srv.fallback, Rule: faqFallbackRule}
}

func buildFAQRules(kb *entity.KnowledgeBase) []faqRule {
	club := kb.Club

	return []faqRule{
		{name: "join", match: containsAny("join", "member", "sign up", "signup", "enroll"), reply: joinReply(club)},
		{name: "events", match: containsAny("event", "workshop", "hackathon", "meetup", "meeting", "schedule"), reply: eventsReply(club)},
		{name: "teams", match: containsAny("team", "board", "president", "who runs", "organizer", "officer", "leader"), reply: teamsReply(kb)},
		{name: "projects", match: containsAny("project", "portfolio"), reply: projectsReply(club)},
		{name: "blogs", match: containsAny("blog", "article", "write", "post"), reply: blogsReply(club)},
		{name: "contact", match: containsAny("contact", "email", "get in touch", "reach you", "reach out"), reply: contactReply(club)},
		{name: "about", match: containsAny("about", "what is", "what's", "what do you do", "activities", "who are you"), reply: aboutReply(club)},
		{name: "socials", match: containsAny("instagram", "linkedin", "twitter", "facebook", "social"), reply: socialsReply(club)},
		{name: "greeting", match: hasWord("hi", "hello", "hey", "hiya", "greetings", "yo"), reply: greetingReply(club)},
		{name: "thanks", match: containsAny("thank", "thx", "appreciate"), reply: "You're welcome! Let me know if there's anything else you'd like to know."},
	}
}

func joinReply(club entity.ClubInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Joining %s is easy:", club.Name)
	for i, step := range club.JoinSteps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, step)
	}
	if club.JoinURL != "" {
		fmt.Fprintf(&b, "\nSign up here: %s", club.JoinURL)
	}

	return b.String()
}

func eventsReply(club entity.ClubInfo) string {
	reply := fmt.Sprintf("We meet %s at %s.", lowerFirst(club.MeetingSchedule), club.Location)

	return reply + " Check the Events page for upcoming workshops, talks and hackathons, and their registration links."
}

func teamsReply(kb *entity.KnowledgeBase) string {
	if len(kb.Teams) == 0 {
		return fmt.Sprintf("%s is run by student volunteers. See the Teams page to meet them.", kb.Club.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is run by these teams:", kb.Club.Name)
	for _, team := range kb.Teams {
		members := make([]string, 0, len(team.Members))
		for _, m := range team.Members {
			if m.Role != "" {
				members = append(members, fmt.Sprintf("%s (%s)", m.Name, m.Role))
			} else {
				members = append(members, m.Name)
			}
		}
		if len(members) == 0 {
			fmt.Fprintf(&b, "\n- %s", team.Name)

			continue
		}
		fmt.Fprintf(&b, "\n- %s: %s", team.Name, strings.Join(members, ", "))
	}

	return b.String()
}

func projectsReply(club entity.ClubInfo) string {
	return fmt.Sprintf("Members of %s build real machine learning projects in semester-long teams. Browse the Projects page for demos and source code.", club.ShortName)
}

func blogsReply(club entity.ClubInfo) string {
	return fmt.Sprintf("Our members write about what they learn. Read the latest articles on the %s blog, and reach out at %s if you'd like to contribute.", club.ShortName, club.Email)
}

func contactReply(club entity.ClubInfo) string {
	return fmt.Sprintf("You can reach us at %s, or drop by %s.", club.Email, club.Location)
}

func aboutReply(club entity.ClubInfo) string {
	reply := strings.TrimSpace(club.About)
	if len(club.Activities) > 0 {
		reply += "\nWhat we do: " + strings.Join(club.Activities, ", ") + "."
	}

	return reply
}

func socialsReply(club entity.ClubInfo) string {
	var links []string
	for _, l := range []struct{ name, url string }{
		{"Instagram", club.Socials.Instagram},
		{"LinkedIn", club.Socials.LinkedIn},
		{"Twitter", club.Socials.Twitter},
		{"Facebook", club.Socials.Facebook},
	} {
		if l.url != "" {
			links = append(links, fmt.Sprintf("%s: %s", l.name, l.url))
		}
	}
	if len(links) == 0 {
		return fmt.Sprintf("Follow %s through our website %s.", club.ShortName, club.Website)
	}

	return "Follow us!\n" + strings.Join(links, "\n")
}

func greetingReply(club entity.ClubInfo) string {
	return fmt.Sprintf("Hi there! I'm the %s assistant. Ask me about joining, events, teams or projects.", club.ShortName)
}

func fallbackReply(kb *entity.KnowledgeBase) string {
	return fmt.Sprintf("Sorry, I don't know the answer to that yet. Try asking:\n"+
		"- How do I join?\n"+
		"- When are the events?\n"+
		"- Who is on the team?\n"+
		"- What projects do you work on?\n"+
		"- How can I contact %s?", kb.Club.ShortName)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}
