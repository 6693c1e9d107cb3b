package league

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// acceptedDateLayouts lists the formats accepted for a match date, in order.
var acceptedDateLayouts = []string{
	DateLayout,
	"02/01/2006",
	"2006-01-02T15:04",
	time.RFC3339,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalises a submission and converts it into a NewMatch.
func (sub Submission) Validate() (NewMatch, error) {
	sub.WinnerChampion = strings.TrimSpace(sub.WinnerChampion)
	sub.LoserChampion = strings.TrimSpace(sub.LoserChampion)
	sub.MatchDate = strings.TrimSpace(sub.MatchDate)

	if err := validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return NewMatch{}, fieldError(verrs[0])
		}
		return NewMatch{}, &ValidationError{Message: err.Error()}
	}

	date, err := ParseMatchDate(sub.MatchDate)
	if err != nil {
		return NewMatch{}, &ValidationError{Field: "matchDate", Message: err.Error()}
	}

	return NewMatch{
		WinnerPlayerID: sub.WinnerPlayerID,
		WinnerChampion: sub.WinnerChampion,
		LoserPlayerID:  sub.LoserPlayerID,
		LoserChampion:  sub.LoserChampion,
		MatchDate:      date,
	}, nil
}

// ParseMatchDate accepts ISO dates, the DD/MM/YYYY form format and timestamps.
func ParseMatchDate(value string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or DD/MM/YYYY", value)
}

func fieldError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Message: "is required"}
	case "nefield":
		return &ValidationError{Field: field, Message: "winner and loser must be different players"}
	case "gt":
		return &ValidationError{Field: field, Message: "must be a valid player id"}
	case "max":
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %s characters", fe.Param())}
	default:
		return &ValidationError{Field: field, Message: fmt.Sprintf("failed %s validation", fe.Tag())}
	}
}
