package creatorview

import "github.com/dalemusser/creatorhub/internal/domain/models"

// Field is a displayable column of an exploration row or card.
type Field string

const (
	FieldTitle             Field = "title"
	FieldThumbnail         Field = "thumbnail"
	FieldLastUpdated       Field = "last_updated"
	FieldUnresolvedAnswers Field = "unresolved_answers"
	FieldRating            Field = "rating"
	FieldViews             Field = "views"
	FieldFeedback          Field = "feedback"
	// FieldNotPublished is the placeholder shown instead of public metrics.
	FieldNotPublished Field = "not_published"
)

// NotPublishedText replaces the public metrics of private explorations.
const NotPublishedText = "This exploration is not yet published."

// FieldSet is the set of fields a row may render.
type FieldSet map[Field]bool

// Has reports whether f is visible.
func (s FieldSet) Has(f Field) bool { return s[f] }

// VisibleFields maps a publication status to the fields that may be shown.
// Public metrics are meaningless before publication, so anything that is
// not public or publicized gets the placeholder instead.
func VisibleFields(status string) FieldSet {
	set := FieldSet{
		FieldTitle:             true,
		FieldThumbnail:         true,
		FieldLastUpdated:       true,
		FieldUnresolvedAnswers: true,
	}
	switch status {
	case models.StatusPublic, models.StatusPublicized:
		set[FieldRating] = true
		set[FieldViews] = true
		set[FieldFeedback] = true
	default:
		set[FieldNotPublished] = true
	}
	return set
}
