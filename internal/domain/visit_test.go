package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/pkg/types"
)

func TestVisitStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    VisitStatus
		to      VisitStatus
		allowed bool
	}{
		{"scheduled to in_progress", VisitScheduled, VisitInProgress, true},
		{"scheduled to cancelled", VisitScheduled, VisitCancelled, true},
		{"in_progress to completed", VisitInProgress, VisitCompleted, true},
		{"in_progress to cancelled", VisitInProgress, VisitCancelled, true},
		{"scheduled to completed", VisitScheduled, VisitCompleted, false},
		{"in_progress to scheduled", VisitInProgress, VisitScheduled, false},
		{"completed to cancelled", VisitCompleted, VisitCancelled, false},
		{"completed to in_progress", VisitCompleted, VisitInProgress, false},
		{"cancelled to scheduled", VisitCancelled, VisitScheduled, false},
		{"cancelled to completed", VisitCancelled, VisitCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []VisitStatus{VisitScheduled, VisitInProgress, VisitCompleted, VisitCancelled}

	for _, terminal := range []VisitStatus{VisitCompleted, VisitCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"transition %s -> %s must be illegal", terminal, next)
		}
	}
}

func TestVisitEndTimeDerived(t *testing.T) {
	visit := &Visit{StartTime: types.TimeString("10:00"), DurationMinutes: 60}

	end, err := visit.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), end)

	// Конец всегда пересчитывается из start+duration
	visit.DurationMinutes = 90
	end, err = visit.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), end)

	visit.StartTime = types.TimeString("14:15")
	end, err = visit.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("15:45"), end)
}

func TestTimeWindowOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeWindow
		overlaps bool
	}{
		{
			name:     "contained",
			a:        TimeWindow{Start: "10:00", DurationMinutes: 60},
			b:        TimeWindow{Start: "10:30", DurationMinutes: 60},
			overlaps: true,
		},
		{
			name:     "identical",
			a:        TimeWindow{Start: "10:00", DurationMinutes: 60},
			b:        TimeWindow{Start: "10:00", DurationMinutes: 60},
			overlaps: true,
		},
		{
			name:     "back to back after",
			a:        TimeWindow{Start: "10:00", DurationMinutes: 60},
			b:        TimeWindow{Start: "11:00", DurationMinutes: 60},
			overlaps: false,
		},
		{
			name:     "back to back before",
			a:        TimeWindow{Start: "10:00", DurationMinutes: 60},
			b:        TimeWindow{Start: "09:00", DurationMinutes: 60},
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        TimeWindow{Start: "10:00", DurationMinutes: 30},
			b:        TimeWindow{Start: "15:00", DurationMinutes: 30},
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Overlaps(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.overlaps, got)

			// Пересечение симметрично
			rev, err := tt.b.Overlaps(tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.overlaps, rev)
		})
	}
}
