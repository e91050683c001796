// Package skill разбирает события голосового ассистента и строит ответы навыка.
package skill

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/greetings-skill/internal/metrics"
	"bitbucket.org/sotavant/greetings-skill/internal/models"
	"bitbucket.org/sotavant/greetings-skill/internal/quote"
	"bitbucket.org/sotavant/greetings-skill/internal/wish"
)

const (
	IntentHello     = "HelloIntent"
	IntentQuote     = "QuoteIntent"
	IntentNextQuote = "NextQuoteIntent"
	IntentStop      = "AMAZON.StopIntent"
	IntentCancel    = "AMAZON.CancelIntent"

	SlotFirstName = "FirstName"

	// AttrQuoteIntent отмечает, что в диалоге уже звучала цитата.
	AttrQuoteIntent = "quoteIntent"
)

// DefaultImageURL — картинка для карточки приветствия.
const DefaultImageURL = "https://www.publicdomainpictures.net/pictures/290000/nahled/hello-text.jpg"

const (
	welcomeText     = "Welcome to Greetings Skill. Using our skill you can greet your guests. Whom you want to greet?"
	welcomeReprompt = "You can say for example, say hello to John."
	moreQuotesText  = " Do you want to listen to one more quote? "
	moreReprompt    = "You can say yes or one more. "
	wrongInvocation = "Wrong Invocation of this Intent. "
	goodbyeText     = "Good bye. "
)

type Dispatcher struct {
	quotes   quote.Fetcher
	log      *zap.Logger
	now      func() time.Time
	imageURL string
}

type Option func(*Dispatcher)

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

func WithImageURL(url string) Option {
	return func(d *Dispatcher) {
		d.imageURL = url
	}
}

func NewDispatcher(quotes quote.Fetcher, log *zap.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		quotes:   quotes,
		log:      log,
		now:      time.Now,
		imageURL: DefaultImageURL,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	return d
}

// Dispatch обрабатывает одно событие. Для SessionEndedRequest возвращает nil, nil:
// отвечать на него не нужно.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.Request) (*models.Response, error) {
	if req.Session == nil {
		req.Session = &models.Session{}
	}
	if req.Session.Attributes == nil {
		req.Session.Attributes = map[string]any{}
	}

	d.log.Debug("dispatching event", zap.Any("event", req))

	intent := ""
	if req.Request.Intent != nil {
		intent = req.Request.Intent.Name
	}

	resp, err := d.dispatch(ctx, req)

	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
		d.log.Debug("cannot handle event",
			zap.String("type", req.Request.Type),
			zap.String("intent", intent),
			zap.Error(err))
	case resp == nil:
		outcome = metrics.OutcomeNoop
	default:
		d.log.Debug("built response", zap.Any("response", resp))
	}
	metrics.DispatchTotal.WithLabelValues(typeLabel(req.Request.Type), intentLabel(intent), outcome).Inc()

	return resp, err
}

// labelUnknown заменяет в метриках значения, пришедшие извне, чтобы число серий было ограничено.
const labelUnknown = "unknown"

func typeLabel(t string) string {
	switch t {
	case models.TypeLaunchRequest, models.TypeIntentRequest, models.TypeSessionEndedRequest:
		return t
	default:
		return labelUnknown
	}
}

func intentLabel(name string) string {
	switch name {
	case "", IntentHello, IntentQuote, IntentNextQuote, IntentStop, IntentCancel:
		return name
	default:
		return labelUnknown
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, req *models.Request) (*models.Response, error) {
	switch req.Request.Type {
	case models.TypeLaunchRequest:
		return d.handleLaunch(), nil
	case models.TypeIntentRequest:
		return d.handleIntent(ctx, req)
	case models.TypeSessionEndedRequest:
		return nil, nil
	default:
		return nil, &Error{Kind: KindUnknownIntentType, RequestType: req.Request.Type}
	}
}

func (d *Dispatcher) handleIntent(ctx context.Context, req *models.Request) (*models.Response, error) {
	in := req.Request.Intent
	if in == nil {
		return nil, &Error{Kind: KindUnknownIntentName, RequestType: req.Request.Type}
	}

	switch in.Name {
	case IntentHello:
		return d.handleHello(ctx, in)
	case IntentQuote:
		return d.handleQuote(ctx, req.Session)
	case IntentNextQuote:
		return d.handleNextQuote(ctx, req.Session)
	case IntentStop, IntentCancel:
		return Build(Options{
			SpeechText: goodbyeText,
			EndSession: true,
		}), nil
	default:
		return nil, &Error{Kind: KindUnknownIntentName, RequestType: req.Request.Type, Intent: in.Name}
	}
}

func (d *Dispatcher) handleLaunch() *models.Response {
	return Build(Options{
		SpeechText:   welcomeText,
		RepromptText: welcomeReprompt,
		EndSession:   false,
	})
}

func (d *Dispatcher) handleHello(ctx context.Context, in *models.Intent) (*models.Response, error) {
	name, ok := in.SlotValue(SlotFirstName)
	if !ok {
		return nil, &Error{Kind: KindMissingSlot, Intent: in.Name, Slot: SlotFirstName}
	}

	safeName := escapeSSML(name)
	speech := fmt.Sprintf(`Hello <say-as interpret-as="spell-out">%s</say-as> %s. `, safeName, safeName)
	speech += wish.For(d.now())

	q, err := d.fetchQuote(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	return Build(Options{
		SpeechText: speech + escapeSSML(q),
		Card: &CardOptions{
			Title:    "Hello " + name,
			Content:  q,
			ImageURL: d.imageURL,
		},
		EndSession: true,
	}), nil
}

func (d *Dispatcher) handleQuote(ctx context.Context, s *models.Session) (*models.Response, error) {
	q, err := d.fetchQuote(ctx, IntentQuote)
	if err != nil {
		return nil, err
	}

	s.Attributes[AttrQuoteIntent] = true
	return d.moreQuotes(q, s), nil
}

func (d *Dispatcher) handleNextQuote(ctx context.Context, s *models.Session) (*models.Response, error) {
	if started, _ := s.Attributes[AttrQuoteIntent].(bool); !started {
		return Build(Options{
			SpeechText: wrongInvocation,
			Attributes: s.Attributes,
			EndSession: true,
		}), nil
	}

	q, err := d.fetchQuote(ctx, IntentNextQuote)
	if err != nil {
		return nil, err
	}
	return d.moreQuotes(q, s), nil
}

func (d *Dispatcher) moreQuotes(q string, s *models.Session) *models.Response {
	return Build(Options{
		SpeechText:   escapeSSML(q) + moreQuotesText,
		RepromptText: moreReprompt,
		Attributes:   s.Attributes,
		EndSession:   false,
	})
}

// escapeSSML экранирует текст, подставляемый внутрь <speak>.
func escapeSSML(s string) string {
	var b strings.Builder
	// strings.Builder не возвращает ошибок при записи
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func (d *Dispatcher) fetchQuote(ctx context.Context, intent string) (string, error) {
	q, err := d.quotes.Fetch(ctx)
	if err == nil {
		return q, nil
	}

	kind := KindTransport
	if errors.Is(err, quote.ErrParse) {
		kind = KindParse
	}
	return "", &Error{Kind: kind, RequestType: models.TypeIntentRequest, Intent: intent, Err: err}
}
