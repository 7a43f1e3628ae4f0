package handler

import (
	"net/http"
	"strings"
	"testing"

	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/errors"
	mockUsecase "aiclub/internal/mocks/usecase"
	"aiclub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Chat(t *testing.T) {
	faq := mockUsecase.NewMockFAQUsecase(t)
	faq.EXPECT().Answer("how do I join?").Return(usecase.FAQReply{Reply: "Sign up at the fair.", Rule: "join"})

	c, rec := newContext(newRequest(http.MethodPost, "/api/v1/chat", `{"message":"how do I join?"}`))
	require.NoError(t, NewChatHandler(faq).Chat(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.FAQReply
	decodeData(t, rec, &out)
	assert.Equal(t, "join", out.Rule)
}

func TestChatHandler_Chat_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing []string
		invalid map[string]string
	}{
		{name: "empty message", body: `{"message":""}`, missing: []string{"message"}},
		{name: "too long", body: `{"message":"` + strings.Repeat("a", 501) + `"}`, invalid: map[string]string{"message": "max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(newRequest(http.MethodPost, "/api/v1/chat", tt.body))
			err := NewChatHandler(mockUsecase.NewMockFAQUsecase(t)).Chat(c)

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.missing, verr.Missing)
			assert.Equal(t, tt.invalid, verr.Invalid)
		})
	}
}
