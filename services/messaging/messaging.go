package messaging

import (
	"errors"
	"fmt"

	"servana/config"

	"github.com/twilio/twilio-go"
	conversations "github.com/twilio/twilio-go/rest/conversations/v1"
)

// Actions accepted by the single messaging endpoint.
const (
	ActionCreateConversation = "create-conversation"
	ActionSendMessage        = "send-message"
	ActionGetMessages        = "get-messages"
	ActionGetParticipants    = "get-conversation-participants"
)

// ErrUnknownAction is returned for an unrecognized action value.
var ErrUnknownAction = errors.New("unknown messaging action")

// Request is the discriminated union the endpoint accepts. Action selects
// the operation; the remaining fields apply per action.
type Request struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversationId,omitempty"`
	FriendlyName   string `json:"friendlyName,omitempty"`
	Identity       string `json:"identity,omitempty"`
	Body           string `json:"body,omitempty"`
}

// Message is one chat message in a conversation.
type Message struct {
	SID    string `json:"sid"`
	Author string `json:"author"`
	Body   string `json:"body"`
	Date   string `json:"date,omitempty"`
}

// Participant is one member of a conversation.
type Participant struct {
	SID      string `json:"sid"`
	Identity string `json:"identity"`
}

// Service bridges booking chat onto Twilio Conversations.
type Service interface {
	CreateConversation(friendlyName, identity string) (string, error)
	SendMessage(conversationID, identity, body string) (*Message, error)
	GetMessages(conversationID string) ([]Message, error)
	GetParticipants(conversationID string) ([]Participant, error)
}

// TwilioMessagingService implements Service against the Twilio REST API.
type TwilioMessagingService struct {
	client *twilio.RestClient
}

// NewMessagingService builds the Twilio client from config credentials.
func NewMessagingService() *TwilioMessagingService {
	return &TwilioMessagingService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AppConfig.TwilioAccountSID,
			Password: config.AppConfig.TwilioAuthToken,
		}),
	}
}

// Identity formats the chat identity for a marketplace user, e.g.
// "customer-42" or "provider-7". Role-prefixing keeps customer and staff ID
// spaces from colliding inside one conversation.
func Identity(role, id string) string {
	return fmt.Sprintf("%s-%s", role, id)
}

// CreateConversation opens a conversation and joins the creator to it.
func (s *TwilioMessagingService) CreateConversation(friendlyName, identity string) (string, error) {
	conv, err := s.client.ConversationsV1.CreateConversation(&conversations.CreateConversationParams{
		FriendlyName: &friendlyName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}
	if conv.Sid == nil {
		return "", fmt.Errorf("conversation created without SID")
	}

	if identity != "" {
		_, err = s.client.ConversationsV1.CreateConversationParticipant(*conv.Sid, &conversations.CreateConversationParticipantParams{
			Identity: &identity,
		})
		if err != nil {
			return "", fmt.Errorf("failed to join creator to conversation: %w", err)
		}
	}
	return *conv.Sid, nil
}

// SendMessage posts a message to the conversation as the given identity.
// Unknown identities are added as participants on first send.
func (s *TwilioMessagingService) SendMessage(conversationID, identity, body string) (*Message, error) {
	_, err := s.client.ConversationsV1.CreateConversationParticipant(conversationID, &conversations.CreateConversationParticipantParams{
		Identity: &identity,
	})
	if err != nil {
		// A 409 means the identity is already in the conversation, which
		// is the common case after the first message.
		participants, listErr := s.GetParticipants(conversationID)
		if listErr != nil {
			return nil, fmt.Errorf("failed to add participant: %w", err)
		}
		found := false
		for _, p := range participants {
			if p.Identity == identity {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("failed to add participant: %w", err)
		}
	}

	msg, err := s.client.ConversationsV1.CreateConversationMessage(conversationID, &conversations.CreateConversationMessageParams{
		Author: &identity,
		Body:   &body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	out := &Message{Author: identity, Body: body}
	if msg.Sid != nil {
		out.SID = *msg.Sid
	}
	if msg.DateCreated != nil {
		out.Date = msg.DateCreated.String()
	}
	return out, nil
}

// GetMessages lists the conversation's messages in order.
func (s *TwilioMessagingService) GetMessages(conversationID string) ([]Message, error) {
	records, err := s.client.ConversationsV1.ListConversationMessage(conversationID, &conversations.ListConversationMessageParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]Message, 0, len(records))
	for _, r := range records {
		m := Message{}
		if r.Sid != nil {
			m.SID = *r.Sid
		}
		if r.Author != nil {
			m.Author = *r.Author
		}
		if r.Body != nil {
			m.Body = *r.Body
		}
		if r.DateCreated != nil {
			m.Date = r.DateCreated.String()
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// GetParticipants lists the conversation's members.
func (s *TwilioMessagingService) GetParticipants(conversationID string) ([]Participant, error) {
	records, err := s.client.ConversationsV1.ListConversationParticipant(conversationID, &conversations.ListConversationParticipantParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	participants := make([]Participant, 0, len(records))
	for _, r := range records {
		p := Participant{}
		if r.Sid != nil {
			p.SID = *r.Sid
		}
		if r.Identity != nil {
			p.Identity = *r.Identity
		}
		participants = append(participants, p)
	}
	return participants, nil
}
