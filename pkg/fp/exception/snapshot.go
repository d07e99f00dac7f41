package exception

import (
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
)

// ErrorSnapshot is a plain-data copy of an error chain, safe to serialize
// where live error values cannot travel.
type ErrorSnapshot struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	CapturedAt time.Time `json:"capturedAt" yaml:"capturedAt"`
	Name       string    `json:"name" yaml:"name"`
	Message    Message   `json:"message" yaml:"message"`
	Chain      []string  `json:"chain" yaml:"chain"`
}

// Snapshot flattens err. For a plain error the message template is its
// Error() text and there are no tokens.
func Snapshot(err error) ErrorSnapshot {
	s := ErrorSnapshot{
		ID:         uuid.New(),
		CapturedAt: time.Now().UTC(),
		Chain:      Lines(err),
	}
	if err == nil {
		return s
	}

	s.Name = Kind(err)
	if e, ok := err.(*Exception); ok {
		s.Message = e.Message()
	} else {
		s.Message = Message{Template: err.Error()}
	}
	return s
}

// Fields implements log.Fielder.
func (s ErrorSnapshot) Fields() log.Fields {
	fields := log.Fields{
		"error_id":   s.ID.String(),
		"error_name": s.Name,
		"template":   s.Message.Template,
		"chain":      s.Chain,
	}
	for name, value := range s.Message.Tokens {
		fields["token."+name] = value
	}
	return fields
}

// Log writes err with its snapshot fields and the Exception context as one
// error-level entry. A nil err is not logged.
func Log(logger log.Interface, err error) {
	if err == nil {
		return
	}

	entry := logger.WithFields(Snapshot(err))
	if e, ok := err.(*Exception); ok {
		for key, value := range e.context {
			entry = entry.WithField("context."+key, value)
		}
	}
	entry.Error(err.Error())
}
