// Package schedule evalúa si un negocio está abierto según su horario semanal.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Days días de la semana en el orden de presentación.
var Days = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// byWeekday nombre del día indexado por time.Weekday (Domingo = 0).
var byWeekday = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// DayName nombre en español del día de t.
func DayName(t time.Time) string {
	return byWeekday[t.Weekday()]
}

// Default horario sugerido para negocios que aún no configuraron el suyo.
func Default() entity.Schedule {
	return entity.Schedule{
		"Lunes":     {Open: false, From: "09:00", To: "22:00"},
		"Martes":    {Open: true, From: "09:00", To: "22:00"},
		"Miércoles": {Open: true, From: "09:00", To: "22:00"},
		"Jueves":    {Open: true, From: "09:00", To: "22:00"},
		"Viernes":   {Open: true, From: "09:00", To: "23:30"},
		"Sábado":    {Open: true, From: "10:00", To: "23:30"},
		"Domingo":   {Open: true, From: "10:00", To: "23:30"},
	}
}

// WithDefaults combina el horario guardado sobre el horario por defecto.
func WithDefaults(s entity.Schedule) entity.Schedule {
	out := Default()
	for day, cfg := range s {
		out[day] = cfg
	}
	return out
}

// IsOpen indica si el negocio está abierto en now (ya convertido a la zona del negocio).
// Sin horario se considera siempre abierto. La ventana es [from, to); si to < from cruza la
// medianoche y la madrugada se evalúa contra el día anterior. from == to es un día sin atención.
func IsOpen(s entity.Schedule, now time.Time) bool {
	if len(s) == 0 {
		return true
	}
	minute := now.Hour()*60 + now.Minute()

	if cfg, ok := s[DayName(now)]; ok && cfg.Open {
		from, to, err := window(cfg)
		if err == nil {
			switch {
			case from < to && minute >= from && minute < to:
				return true
			case to < from && minute >= from:
				return true
			}
		}
	}

	if prev, ok := s[DayName(now.AddDate(0, 0, -1))]; ok && prev.Open {
		from, to, err := window(prev)
		if err == nil && to < from && minute < to {
			return true
		}
	}
	return false
}

// Entry un día del horario semanal ordenado.
type Entry struct {
	Day string `json:"day"`
	entity.DaySchedule
}

// Weekly devuelve el horario en orden Lunes…Domingo omitiendo los días sin hora de apertura.
func Weekly(s entity.Schedule) []Entry {
	out := make([]Entry, 0, len(Days))
	if len(s) == 0 {
		return out
	}
	for _, day := range Days {
		cfg, ok := s[day]
		if !ok || cfg.From == "" {
			continue
		}
		out = append(out, Entry{Day: day, DaySchedule: cfg})
	}
	return out
}

// Validate comprueba nombres de día y formato HH:MM.
func Validate(s entity.Schedule) error {
	for day, cfg := range s {
		if !isDay(day) {
			return fmt.Errorf("día desconocido %q", day)
		}
		if _, err := ParseClock(cfg.From); err != nil {
			return fmt.Errorf("%s desde: %w", day, err)
		}
		if _, err := ParseClock(cfg.To); err != nil {
			return fmt.Errorf("%s hasta: %w", day, err)
		}
	}
	return nil
}

// ParseClock convierte "HH:MM" en minutos desde la medianoche.
func ParseClock(v string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return 0, fmt.Errorf("hora inválida %q", v)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("hora inválida %q", v)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 || len(m) != 2 {
		return 0, fmt.Errorf("hora inválida %q", v)
	}
	return hh*60 + mm, nil
}

func window(cfg entity.DaySchedule) (int, int, error) {
	from, err := ParseClock(cfg.From)
	if err != nil {
		return 0, 0, err
	}
	to, err := ParseClock(cfg.To)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func isDay(d string) bool {
	for _, day := range Days {
		if day == d {
			return true
		}
	}
	return false
}
