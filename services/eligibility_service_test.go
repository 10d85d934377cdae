package services

import (
	"testing"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePublishAllConditionsMet(t *testing.T) {
	verdict := EvaluatePublish(FlyerSnapshot{
		Loaded:        true,
		IsActive:      true,
		HasCoverImage: true,
		ProductCount:  3,
	})

	assert.True(t, verdict.CanPublish)
	assert.Empty(t, verdict.Reason)
}

func TestEvaluatePublishReasonPriority(t *testing.T) {
	tests := []struct {
		name     string
		snapshot FlyerSnapshot
		reason   string
	}{
		{
			name:     "not loaded wins over everything",
			snapshot: FlyerSnapshot{Loaded: false},
			reason:   "Flyer not loaded",
		},
		{
			name:     "inactive wins over missing products and cover",
			snapshot: FlyerSnapshot{Loaded: true, IsActive: false},
			reason:   "Flyer must be active to publish",
		},
		{
			name:     "no products wins over missing cover",
			snapshot: FlyerSnapshot{Loaded: true, IsActive: true, ProductCount: 0},
			reason:   "Flyer must have products to publish",
		},
		{
			name:     "missing cover is the last check",
			snapshot: FlyerSnapshot{Loaded: true, IsActive: true, ProductCount: 1},
			reason:   "Flyer must have a cover image to publish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluatePublish(tt.snapshot)
			assert.False(t, verdict.CanPublish)
			assert.Equal(t, tt.reason, verdict.Reason)
		})
	}
}

func TestEvaluatePublishEveryFailingComboBlocks(t *testing.T) {
	// Any combination with at least one unmet condition must refuse.
	for _, active := range []bool{true, false} {
		for _, cover := range []bool{true, false} {
			for _, count := range []int{0, 2} {
				s := FlyerSnapshot{Loaded: true, IsActive: active, HasCoverImage: cover, ProductCount: count}
				verdict := EvaluatePublish(s)
				if active && cover && count > 0 {
					assert.True(t, verdict.CanPublish)
				} else {
					assert.False(t, verdict.CanPublish, "snapshot %+v should not be publishable", s)
					assert.NotEmpty(t, verdict.Reason)
				}
			}
		}
	}
}

func TestPublishChecklistReportsEveryConditionIndependently(t *testing.T) {
	checklist := PublishChecklist(FlyerSnapshot{
		Loaded:        true,
		IsActive:      false,
		HasCoverImage: true,
		ProductCount:  0,
	})

	require.Len(t, checklist, 3)
	assert.Equal(t, "Flyer is active", checklist[0].Label)
	assert.False(t, checklist[0].Met)
	assert.Equal(t, "Flyer has at least one product", checklist[1].Label)
	assert.False(t, checklist[1].Met)
	assert.Equal(t, "Flyer has a cover image", checklist[2].Label)
	assert.True(t, checklist[2].Met)
}

func TestSnapshotFromFlyer(t *testing.T) {
	flyer := models.Flyer{
		ID:            "f1",
		CoverImage:    "/uploads/flyers/cover.jpg",
		IsActive:      true,
		TotalProducts: 12,
	}

	s := SnapshotFromFlyer(flyer)
	assert.True(t, s.Loaded)
	assert.True(t, s.IsActive)
	assert.True(t, s.HasCoverImage)
	assert.Equal(t, 12, s.ProductCount)

	empty := SnapshotFromFlyer(models.Flyer{})
	assert.False(t, empty.Loaded)
	assert.False(t, empty.HasCoverImage)
}
