package services

import "github.com/Fletushka-Katalog/fletushka-gateway/models"

// FlyerSnapshot is the publish-relevant slice of a flyer's state.
type FlyerSnapshot struct {
	Loaded        bool
	IsActive      bool
	HasCoverImage bool
	ProductCount  int
}

// Verdict is the publish-eligibility result. Reason is empty when the
// flyer can be published, otherwise it names the first unmet condition.
type Verdict struct {
	CanPublish bool   `json:"canPublish"`
	Reason     string `json:"reason"`
}

// ChecklistItem is one row of the "to publish this flyer, ensure" list.
type ChecklistItem struct {
	Label string `json:"label"`
	Met   bool   `json:"met"`
}

// SnapshotFromFlyer builds a snapshot from an upstream flyer.
func SnapshotFromFlyer(f models.Flyer) FlyerSnapshot {
	return FlyerSnapshot{
		Loaded:        f.ID != "",
		IsActive:      f.IsActive,
		HasCoverImage: f.CoverImage != "",
		ProductCount:  f.TotalProducts,
	}
}

// EvaluatePublish decides whether a flyer may be published. Conditions
// are checked in fixed priority order and the first failure wins:
// loaded, active, has products, has cover image.
func EvaluatePublish(s FlyerSnapshot) Verdict {
	if !s.Loaded {
		return Verdict{Reason: "Flyer not loaded"}
	}
	if !s.IsActive {
		return Verdict{Reason: "Flyer must be active to publish"}
	}
	if s.ProductCount == 0 {
		return Verdict{Reason: "Flyer must have products to publish"}
	}
	if !s.HasCoverImage {
		return Verdict{Reason: "Flyer must have a cover image to publish"}
	}
	return Verdict{CanPublish: true}
}

// PublishChecklist reports every condition independently, met or not.
// The dashboard renders all unmet conditions, not just the verdict's
// first failure.
func PublishChecklist(s FlyerSnapshot) []ChecklistItem {
	return []ChecklistItem{
		{Label: "Flyer is active", Met: s.IsActive},
		{Label: "Flyer has at least one product", Met: s.ProductCount > 0},
		{Label: "Flyer has a cover image", Met: s.HasCoverImage},
	}
}
