package domain

import "time"

type SuitType string

const (
	Jammer   SuitType = "jammer"
	Kneeskin SuitType = "kneeskin"
	Brief    SuitType = "brief"
)

func (t SuitType) Valid() bool {
	return t == Jammer || t == Kneeskin || t == Brief
}

type SuitCondition string

const (
	SuitNew     SuitCondition = "new"
	SuitGood    SuitCondition = "good"
	SuitWorn    SuitCondition = "worn"
	SuitRetired SuitCondition = "retired"
)

func (c SuitCondition) Valid() bool {
	switch c {
	case SuitNew, SuitGood, SuitWorn, SuitRetired:
		return true
	}
	return false
}

// SuitModel is a racing-suit product in the catalog, tech suits and regular
// racing suits alike.
type SuitModel struct {
	ID                 string   `json:"id"`
	Brand              string   `json:"brand"`
	ModelName          string   `json:"model_name"`
	Type               SuitType `json:"suit_type"`
	IsTechSuit         bool     `json:"is_tech_suit"`
	Gender             Gender   `json:"gender"`
	ReleaseYear        int      `json:"release_year,omitempty"`
	MSRPCents          int      `json:"msrp_cents,omitempty"`
	ExpectedRacesPeak  int      `json:"expected_races_peak"`
	ExpectedRacesTotal int      `json:"expected_races_total"`
	FINAApproved       bool     `json:"fina_approved"`
	Notes              string   `json:"notes,omitempty"`
}

// SwimmerSuit is one physical suit owned by a swimmer, with usage history.
type SwimmerSuit struct {
	ID                 string        `json:"id"`
	SwimmerID          string        `json:"swimmer_id"`
	SuitModelID        string        `json:"suit_model_id"`
	Nickname           string        `json:"nickname,omitempty"`
	Size               string        `json:"size,omitempty"`
	Color              string        `json:"color,omitempty"`
	PurchaseDate       *time.Time    `json:"purchase_date,omitempty"`
	PurchasePriceCents int           `json:"purchase_price_cents,omitempty"`
	PurchaseLocation   string        `json:"purchase_location,omitempty"`
	WearCount          int           `json:"wear_count"`
	RaceCount          int           `json:"race_count"`
	Condition          SuitCondition `json:"condition"`
	RetiredDate        *time.Time    `json:"retired_date,omitempty"`
	RetirementReason   string        `json:"retirement_reason,omitempty"`
}

func (s SwimmerSuit) IsRetired() bool {
	return s.Condition == SuitRetired
}

// LifePercentage is the share of the model's expected race lifespan used.
func (s SwimmerSuit) LifePercentage(expectedRacesTotal int) float64 {
	if expectedRacesTotal <= 0 {
		return 0
	}
	return float64(s.RaceCount) / float64(expectedRacesTotal) * 100
}

// RemainingRaces can go negative when a suit is raced past its lifespan.
func (s SwimmerSuit) RemainingRaces(expectedRacesTotal int) int {
	return expectedRacesTotal - s.RaceCount
}

func (s SwimmerSuit) IsPastPeak(expectedRacesPeak int) bool {
	return s.RaceCount >= expectedRacesPeak
}
