package service

import (
	"fmt"
	"strings"
	"time"
)

// QualityRating is the fixed service-quality scale. The integer value is the
// enumeration rank: lower means better, and display order follows rank.
// RatingUnspecified is the zero value and never a valid rating; it doubles as
// the "not available" sentinel for the modal rating of an empty filter result.
type QualityRating int

const (
	RatingUnspecified QualityRating = iota
	RatingVeryGood
	RatingGood
	RatingAverage
	RatingPoor
	RatingVeryPoor
)

var ratingLabels = map[QualityRating]string{
	RatingVeryGood: "Very Good",
	RatingGood:     "Good",
	RatingAverage:  "Average",
	RatingPoor:     "Poor",
	RatingVeryPoor: "Very Poor",
}

func (q QualityRating) String() string {
	if label, ok := ratingLabels[q]; ok {
		return label
	}
	return "Unspecified"
}

// IsPositive reports whether the rating counts toward positive satisfaction
// (the top two levels of the scale).
func (q QualityRating) IsPositive() bool {
	return q == RatingVeryGood || q == RatingGood
}

// AllQualityRatings returns the valid ratings in rank order.
func AllQualityRatings() []QualityRating {
	return []QualityRating{RatingVeryGood, RatingGood, RatingAverage, RatingPoor, RatingVeryPoor}
}

// ParseQualityRating maps a stored label onto the enumeration. Unrecognized
// labels are a normalization failure, never coerced.
func ParseQualityRating(label string) (QualityRating, bool) {
	for _, q := range AllQualityRatings() {
		if ratingLabels[q] == label {
			return q, true
		}
	}
	return RatingUnspecified, false
}

// SurveyResponse is one normalized survey record. Immutable once produced.
type SurveyResponse struct {
	ID                  int64
	Sector              string
	MaterialMissing     bool
	MissingMaterialType string
	QualityRating       QualityRating
	Message             string
	SubmittedAt         time.Time
}

// MetricsSummary holds the aggregate scalar metrics over one snapshot.
// Percentages are fractions in [0,1]. With Total == 0, LatestSubmittedAt is
// the zero time and MostRecentAgeDays is 0; callers key off Total.
type MetricsSummary struct {
	Total             int
	MissingCount      int
	MissingPct        float64
	PositiveCount     int
	PositivePct       float64
	MostRecentAgeDays int
	LatestSubmittedAt time.Time
}

type CellKey struct {
	Row string
	Col string
}

// cellKeySep joins row and col when a CellKey serves as a JSON map key
// (cross-tabs pass through the JSON view cache). The unit separator cannot
// occur in sector or rating labels.
const cellKeySep = "\x1f"

func (k CellKey) MarshalText() ([]byte, error) {
	return []byte(k.Row + cellKeySep + k.Col), nil
}

func (k *CellKey) UnmarshalText(text []byte) error {
	row, col, ok := strings.Cut(string(text), cellKeySep)
	if !ok {
		return fmt.Errorf("malformed cell key %q", text)
	}
	k.Row = row
	k.Col = col
	return nil
}

// CrossTab is a two-dimensional frequency table. Cells holds only observed
// (row, col) pairs; RowKeys and ColKeys carry the distinct keys in their
// display order.
type CrossTab struct {
	RowKeys []string
	ColKeys []string
	Cells   map[CellKey]int
}

// DailyCount is one point of the per-day response series. Date is a UTC
// calendar date (midnight).
type DailyCount struct {
	Date  time.Time
	Count int
}

// KeyCount is one labeled count of an ordered breakdown.
type KeyCount struct {
	Key   string
	Count int
}

// MissingFilter is the tri-state material filter dimension.
type MissingFilter int

const (
	MissingAny MissingFilter = iota
	MissingOnly
	NotMissingOnly
)

// FilterSpec selects responses by sector, rating, and the missing-material
// tri-state. An empty Sectors or Qualities slice excludes everything:
// omission is exclusion, not "no filter".
type FilterSpec struct {
	Sectors         []string
	Qualities       []QualityRating
	MissingMaterial MissingFilter
}

// FilteredResult is a filtered subset plus its mini-summary. ModalRating is
// RatingUnspecified when the subset is empty.
type FilteredResult struct {
	Responses    []SurveyResponse
	Count        int
	ModalRating  QualityRating
	MissingCount int
}
