package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

const (
	SpeechTypeSSML = "SSML"

	CardTypeSimple   = "Simple"
	CardTypeStandard = "Standard"
)

// Request описывает входящее событие голосового ассистента.
type Request struct {
	Version string         `json:"version"`
	Session *Session       `json:"session"`
	Request RequestPayload `json:"request"`
}

// Session хранит атрибуты, которые платформа пересылает между репликами одного диалога.
type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type RequestPayload struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// SlotValue возвращает значение слота и признак того, что оно заполнено.
func (i *Intent) SlotValue(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	s, ok := i.Slots[name]
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

// Response описывает ответ навыка.
type Response struct {
	Version           string          `json:"version"`
	Response          ResponsePayload `json:"response"`
	SessionAttributes map[string]any  `json:"sessionAttributes,omitempty"`
}

type ResponsePayload struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Reprompt         *Reprompt    `json:"reprompt,omitempty"`
	Card             *Card        `json:"card,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Card показывается на устройствах с экраном.
type Card struct {
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Content string     `json:"content,omitempty"`
	Text    string     `json:"text,omitempty"`
	Image   *CardImage `json:"image,omitempty"`
}

type CardImage struct {
	SmallImageURL string `json:"smallImageUrl"`
	LargeImageURL string `json:"largeImageUrl"`
}
