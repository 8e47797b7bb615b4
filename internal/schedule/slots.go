package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Horarios holds the four window boundaries of a city's schedule, as
// "HH:MM" strings.
type Horarios struct {
	ManhaInicio string `json:"manhaInicio" bson:"manhaInicio"`
	ManhaFim    string `json:"manhaFim" bson:"manhaFim"`
	TardeInicio string `json:"tardeInicio" bson:"tardeInicio"`
	TardeFim    string `json:"tardeFim" bson:"tardeFim"`
}

// Config is the per-city slot generation configuration.
type Config struct {
	PeriodoManha bool     `json:"periodoManha" bson:"periodoManha"`
	PeriodoTarde bool     `json:"periodoTarde" bson:"periodoTarde"`
	Horarios     Horarios `json:"horarios" bson:"horarios"`
	Intervalo    int      `json:"intervalo" bson:"intervalo"` // minutes
}

// GenerateSlots builds the bookable "HH:MM" slots for a config: the morning
// window followed by the afternoon window, start inclusive, end exclusive,
// stepping Intervalo minutes. A window whose start is not before its end
// yields no slots. Intervalo must be positive.
func GenerateSlots(cfg Config) ([]string, error) {
	if cfg.Intervalo <= 0 {
		return nil, fmt.Errorf("intervalo inválido: %d", cfg.Intervalo)
	}

	slots := []string{}

	if cfg.PeriodoManha {
		block, err := generateWindow(cfg.Horarios.ManhaInicio, cfg.Horarios.ManhaFim, cfg.Intervalo)
		if err != nil {
			return nil, err
		}
		slots = append(slots, block...)
	}

	if cfg.PeriodoTarde {
		block, err := generateWindow(cfg.Horarios.TardeInicio, cfg.Horarios.TardeFim, cfg.Intervalo)
		if err != nil {
			return nil, err
		}
		slots = append(slots, block...)
	}

	return slots, nil
}

func generateWindow(start, end string, interval int) ([]string, error) {
	startMin, err := ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}

	var slots []string
	for m := startMin; m < endMin; m += interval {
		slots = append(slots, FormatTimeOfDay(m))
	}
	return slots, nil
}

// FilterAvailable returns slots minus any entry present in booked,
// preserving input order.
func FilterAvailable(slots []string, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := []string{}
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// SortSlots orders "HH:MM" slots by minutes since midnight. Entries that do
// not parse sort last, keeping their relative order.
func SortSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		mi, erri := ParseTimeOfDay(slots[i])
		mj, errj := ParseTimeOfDay(slots[j])
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return mi < mj
	})
}

// ParseTimeOfDay converts an "HH:MM" string to minutes since midnight.
// Trailing garbage is rejected, not ignored.
func ParseTimeOfDay(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("horário inválido %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("horário inválido %q", s)
	}
	return h*60 + m, nil
}

// FormatTimeOfDay converts minutes since midnight back to "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
