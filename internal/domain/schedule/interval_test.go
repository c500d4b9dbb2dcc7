package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
		{"contained", at(10, 0), at(11, 0), at(10, 15), at(10, 45), true},
		{"partial left", at(9, 45), at(10, 15), at(10, 0), at(10, 30), true},
		{"partial right", at(10, 15), at(10, 45), at(10, 0), at(10, 30), true},
		{"disjoint before", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
		{"disjoint after", at(12, 0), at(13, 0), at(10, 0), at(11, 0), false},
		{"touching end to start", at(9, 30), at(10, 0), at(10, 0), at(10, 30), false},
		{"touching start to end", at(10, 30), at(11, 0), at(10, 0), at(10, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetry
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	assert.True(t, Overlaps(at(10, 0), at(10, 30), at(10, 0), at(10, 30)))
}
