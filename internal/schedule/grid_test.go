package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

func TestGenerateSlots_PartitionsBusinessDay(t *testing.T) {
	slots := GenerateSlots(9, 17, 15)

	require.Len(t, slots, 32)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("09:15"), slots[0].End)
	assert.Equal(t, types.TimeString("16:45"), slots[31].Start)
	assert.Equal(t, types.TimeString("17:00"), slots[31].End)

	// No gaps, no overlaps
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
		assert.Equal(t, 15, slots[i].DurationMinutes)
	}
}

func TestGenerateSlots_InvalidGranularityFallsBackToDefault(t *testing.T) {
	for _, granularity := range []int{0, -5, 7, 13, 90} {
		slots := GenerateSlots(9, 10, granularity)
		require.Len(t, slots, 4, "granularity %d", granularity)
		assert.Equal(t, 15, slots[0].DurationMinutes)
	}
}

func TestGenerateSlots_AllowedGranularities(t *testing.T) {
	expected := map[int]int{5: 96, 10: 48, 15: 32, 30: 16, 45: 10, 60: 8}
	for granularity, count := range expected {
		assert.Len(t, GenerateSlots(9, 17, granularity), count, "granularity %d", granularity)
	}
}

func TestGenerateSlots_EmptyWhenEndNotAfterStart(t *testing.T) {
	assert.Empty(t, GenerateSlots(17, 9, 15))
	assert.Empty(t, GenerateSlots(9, 9, 15))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateSlots(8, 20, 30), GenerateSlots(8, 20, 30))
}
