package skill

import "bitbucket.org/sotavant/greetings-skill/internal/models"

const Version = "1.0"

// Options собирается заново на каждое событие.
type Options struct {
	SpeechText   string
	RepromptText string
	Card         *CardOptions
	Attributes   map[string]any
	EndSession   bool
}

type CardOptions struct {
	Title    string
	Content  string
	ImageURL string
}

// Build формирует ответ навыка. Опции не проверяются: пустая речь даёт
// пустой <speak></speak>.
func Build(o Options) *models.Response {
	resp := &models.Response{
		Version: Version,
		Response: models.ResponsePayload{
			OutputSpeech:     ssml(o.SpeechText),
			ShouldEndSession: o.EndSession,
		},
	}

	if o.RepromptText != "" {
		resp.Response.Reprompt = &models.Reprompt{OutputSpeech: ssml(o.RepromptText)}
	}

	if o.Card != nil && o.Card.Title != "" {
		card := &models.Card{
			Type:  models.CardTypeSimple,
			Title: o.Card.Title,
		}
		if o.Card.ImageURL != "" {
			card.Type = models.CardTypeStandard
			card.Text = o.Card.Content
			card.Image = &models.CardImage{
				SmallImageURL: o.Card.ImageURL,
				LargeImageURL: o.Card.ImageURL,
			}
		} else {
			card.Content = o.Card.Content
		}
		resp.Response.Card = card
	}

	if o.Attributes != nil {
		resp.SessionAttributes = o.Attributes
	}

	return resp
}

func ssml(text string) models.OutputSpeech {
	return models.OutputSpeech{
		Type: models.SpeechTypeSSML,
		SSML: "<speak>" + text + "</speak>",
	}
}
