package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const fechaLayout = "2006-01-02"

// Fecha is a calendar date sent as "YYYY-MM-DD". An RFC3339 timestamp is
// accepted too and truncated to its date.
type Fecha struct{ t time.Time }

// NewFecha returns the Fecha for t's calendar date.
func NewFecha(t time.Time) Fecha {
	return Fecha{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseFecha parses "YYYY-MM-DD".
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(fechaLayout, strings.TrimSpace(s))
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha: use YYYY-MM-DD")
	}
	return Fecha{t: t}, nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		f.t = time.Time{}
		return nil
	}
	s := strings.TrimSpace(*raw)
	if parsed, err := ParseFecha(s); err == nil {
		*f = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("fecha: use YYYY-MM-DD")
	}
	*f = NewFecha(parsed)
	return nil
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.t.Format(fechaLayout))
}

func (f Fecha) Time() time.Time { return f.t }

func (f Fecha) IsZero() bool { return f.t.IsZero() }

func (f Fecha) String() string { return f.t.Format(fechaLayout) }
