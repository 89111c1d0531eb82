package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StatusChange is one entry in a booking's append-only status log.
type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updated_by"` // "client" or "barber"
	Reason    string    `json:"reason"`
}

type StatusHistory []StatusChange

func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		h = StatusHistory{}
	}
	return json.Marshal(h)
}

func (h *StatusHistory) Scan(src any) error {
	return scanJSON(src, h)
}

// Note is one message in either party's note log. The two logs are stored
// separately and merged only for display.
type Note struct {
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	From       string    `json:"from"` // "client" or "barbershop"
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
}

type Notes []Note

func (n Notes) Value() (driver.Value, error) {
	if n == nil {
		n = Notes{}
	}
	return json.Marshal(n)
}

func (n *Notes) Scan(src any) error {
	return scanJSON(src, n)
}

// Location is the client's address for a home-service booking.
type Location struct {
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src any) error {
	return scanJSON(src, l)
}

// Feedback is the client's post-completion rating.
type Feedback struct {
	Rating    int       `json:"rating,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func (f Feedback) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *Feedback) Scan(src any) error {
	return scanJSON(src, f)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
