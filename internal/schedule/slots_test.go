package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "morning only, 10 minute interval, end exclusive",
			cfg: Config{
				PeriodoManha: true,
				Horarios:     Horarios{ManhaInicio: "08:00", ManhaFim: "08:30"},
				Intervalo:    10,
			},
			want: []string{"08:00", "08:10", "08:20"},
		},
		{
			name: "both periods, 30 minute interval",
			cfg: Config{
				PeriodoManha: true,
				PeriodoTarde: true,
				Horarios: Horarios{
					ManhaInicio: "08:00", ManhaFim: "09:00",
					TardeInicio: "14:00", TardeFim: "15:00",
				},
				Intervalo: 30,
			},
			want: []string{"08:00", "08:30", "14:00", "14:30"},
		},
		{
			name: "afternoon only",
			cfg: Config{
				PeriodoTarde: true,
				Horarios:     Horarios{TardeInicio: "13:00", TardeFim: "13:45"},
				Intervalo:    15,
			},
			want: []string{"13:00", "13:15", "13:30"},
		},
		{
			name: "degenerate window start equals end",
			cfg: Config{
				PeriodoManha: true,
				Horarios:     Horarios{ManhaInicio: "08:00", ManhaFim: "08:00"},
				Intervalo:    10,
			},
			want: []string{},
		},
		{
			name: "inverted window yields nothing",
			cfg: Config{
				PeriodoManha: true,
				Horarios:     Horarios{ManhaInicio: "09:00", ManhaFim: "08:00"},
				Intervalo:    10,
			},
			want: []string{},
		},
		{
			name: "no period enabled",
			cfg: Config{
				Horarios:  Horarios{ManhaInicio: "08:00", ManhaFim: "12:00"},
				Intervalo: 30,
			},
			want: []string{},
		},
		{
			name: "interval larger than window",
			cfg: Config{
				PeriodoManha: true,
				Horarios:     Horarios{ManhaInicio: "08:00", ManhaFim: "08:30"},
				Intervalo:    60,
			},
			want: []string{"08:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlots(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	cfg := Config{
		PeriodoManha: true,
		PeriodoTarde: true,
		Horarios: Horarios{
			ManhaInicio: "08:00", ManhaFim: "11:00",
			TardeInicio: "14:00", TardeFim: "17:00",
		},
		Intervalo: 20,
	}
	first, err := GenerateSlots(cfg)
	require.NoError(t, err)
	second, err := GenerateSlots(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlotsInvalidInterval(t *testing.T) {
	for _, interval := range []int{0, -1, -30} {
		cfg := Config{
			PeriodoManha: true,
			Horarios:     Horarios{ManhaInicio: "08:00", ManhaFim: "12:00"},
			Intervalo:    interval,
		}
		_, err := GenerateSlots(cfg)
		assert.Error(t, err, "interval %d", interval)
	}
}

func TestGenerateSlotsBadBoundary(t *testing.T) {
	cfg := Config{
		PeriodoManha: true,
		Horarios:     Horarios{ManhaInicio: "25:00", ManhaFim: "26:00"},
		Intervalo:    30,
	}
	_, err := GenerateSlots(cfg)
	assert.Error(t, err)
}

func TestFilterAvailable(t *testing.T) {
	tests := []struct {
		name   string
		slots  []string
		booked []string
		want   []string
	}{
		{
			name:   "removes booked, preserves order",
			slots:  []string{"08:00", "08:10", "08:20"},
			booked: []string{"08:10"},
			want:   []string{"08:00", "08:20"},
		},
		{
			name:   "nothing booked",
			slots:  []string{"08:00", "08:10"},
			booked: nil,
			want:   []string{"08:00", "08:10"},
		},
		{
			name:   "all booked",
			slots:  []string{"08:00"},
			booked: []string{"08:00"},
			want:   []string{},
		},
		{
			name:   "booked entries outside the slot list are ignored",
			slots:  []string{"08:00"},
			booked: []string{"09:00"},
			want:   []string{"08:00"},
		},
		{
			name:   "empty slots",
			slots:  nil,
			booked: []string{"08:00"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterAvailable(tt.slots, tt.booked))
		})
	}
}

func TestSortSlots(t *testing.T) {
	slots := []string{"14:00", "08:30", "08:05", "13:45"}
	SortSlots(slots)
	assert.Equal(t, []string{"08:05", "08:30", "13:45", "14:00"}, slots)
}

func TestParseTimeOfDay(t *testing.T) {
	m, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	// Single-digit hour is tolerated
	m, err = ParseTimeOfDay("8:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	for _, bad := range []string{"", "abc", "24:00", "10:60", "-1:00", "08:30xyz", "8:30:00", "0x8:30"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "08:05", FormatTimeOfDay(485))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "23:59", FormatTimeOfDay(1439))
}
