package amqp

import (
	"encoding/json"
	"time"

	"warsha/internal/sheets"
)

// MirrorMessage carries one record destined for a target sheet. The full
// record travels in the message so the worker needs no access to the
// shop's local store.
type MirrorMessage struct {
	Target    string        `json:"target"`
	Record    sheets.Record `json:"record"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewMirrorMessage(target string, rec sheets.Record) *MirrorMessage {
	return &MirrorMessage{
		Target:    target,
		Record:    rec,
		Timestamp: time.Now(),
	}
}

func (m *MirrorMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MirrorMessageFromJSON(data []byte) (*MirrorMessage, error) {
	var m MirrorMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
