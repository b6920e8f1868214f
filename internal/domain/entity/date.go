package entity

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date fecha calendario sin componente de hora. Se serializa como "2006-01-02"
// y se interpreta siempre en UTC como zona de referencia fija, de modo que el
// mes calendario no dependa de la zona horaria del proceso.
type Date struct {
	t time.Time
}

// NewDate construye una fecha calendario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca un instante a su fecha calendario en la zona del instante.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate interpreta una fecha "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// AddMonths devuelve la fecha desplazada n meses calendario.
func (d Date) AddMonths(n int) Date {
	return Date{t: d.t.AddDate(0, n, 0)}
}

// Before compara solo la porción de fecha.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Month mes calendario (1–12).
func (d Date) Month() time.Month { return d.t.Month() }

// Year año calendario.
func (d Date) Year() int { return d.t.Year() }

// Day día del mes (1–31).
func (d Date) Day() int { return d.t.Day() }

// IsZero indica la fecha cero.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time devuelve la medianoche UTC de la fecha.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD" y, por compatibilidad con respaldos
// antiguos, timestamps ISO completos (se descarta la hora).
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("fecha inválida %s", s)
	}
	s = s[1 : len(s)-1]
	if len(s) > len(dateLayout) {
		// timestamp ISO completo: quedarnos con la porción de fecha
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
