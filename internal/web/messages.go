package web

import (
	"github.com/verte-zerg/minitype/internal/model"
	"github.com/verte-zerg/minitype/internal/session"
	"github.com/verte-zerg/minitype/internal/stats"
)

// Client message types.
const (
	TypeInput   = "input"
	TypeSubmit  = "submit"
	TypeRestart = "restart"
	TypePaste   = "paste"
)

// Server message types.
const (
	TypeState = "state"
	TypeError = "error"
)

// ClientMessage is sent by the browser for every input event.
type ClientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// StateMessage mirrors a session snapshot.
type StateMessage struct {
	Type    string         `json:"type"`
	State   string         `json:"state"`
	Words   []string       `json:"words"`
	Target  string         `json:"target"`
	Typed   string         `json:"typed"`
	Classes []string       `json:"classes"`
	Result  *ResultPayload `json:"result,omitempty"`
}

// ResultPayload carries a finished score, raw and formatted for display.
type ResultPayload struct {
	ElapsedSeconds  float64 `json:"elapsedSeconds"`
	WordsPerMinute  float64 `json:"wordsPerMinute"`
	AccuracyPercent float64 `json:"accuracyPercent"`
	Time            string  `json:"time"`
	WPM             string  `json:"wpm"`
	Accuracy        string  `json:"accuracy"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func toEvent(msg ClientMessage) (session.Event, bool) {
	switch msg.Type {
	case TypeInput:
		return session.Keystroke{Text: msg.Text}, true
	case TypeSubmit:
		return session.Submit{}, true
	case TypeRestart:
		return session.Restart{}, true
	case TypePaste:
		return session.Paste{Text: msg.Text}, true
	default:
		return nil, false
	}
}

func newStateMessage(snap session.Snapshot) StateMessage {
	classes := make([]string, len(snap.Classes))
	for i, c := range snap.Classes {
		classes[i] = c.String()
	}
	msg := StateMessage{
		Type:    TypeState,
		State:   snap.State.String(),
		Words:   snap.Words,
		Target:  snap.Target,
		Typed:   snap.Typed,
		Classes: classes,
	}
	if snap.Result != nil {
		msg.Result = newResultPayload(*snap.Result)
	}
	return msg
}

func newResultPayload(res model.Result) *ResultPayload {
	return &ResultPayload{
		ElapsedSeconds:  res.ElapsedSeconds,
		WordsPerMinute:  res.WordsPerMinute,
		AccuracyPercent: res.AccuracyPercent,
		Time:            stats.FormatElapsed(res),
		WPM:             stats.FormatWPM(res),
		Accuracy:        stats.FormatAccuracy(res),
	}
}
