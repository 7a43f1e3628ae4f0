package usecase

// FAQReply is the answer to one chat message.
type FAQReply struct {
	Reply string `json:"reply"`
	Rule  string `json:"rule"` // Name of the matching rule, "fallback" when none matched.
}

// FAQUsecase answers free-text questions about the club. Answers are deterministic.
type FAQUsecase interface {
	Answer(message string) FAQReply
}
