package models

import "database/sql"

// RawSurveyRow mirrors one survey_responses record exactly as stored:
// 0/1 integer for the missing-material flag, textual timestamp. All
// raw-format assumptions are resolved by the service-layer normalizer,
// never by consumers of this struct.
type RawSurveyRow struct {
	ID                  int64
	Sector              string
	MaterialMissing     int64
	MissingMaterialType sql.NullString
	QualityRating       string
	Message             sql.NullString
	SubmittedAt         string
}
