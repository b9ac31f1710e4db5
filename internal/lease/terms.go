package lease

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/cases"
)

// Terms is the structured lease-terms document carried by drafts, negotiations and leases.
type Terms struct {
	Financial Financial `json:"financial"`
	Dates     Dates     `json:"dates"`
	Utilities Utilities `json:"utilities"`
}

type Financial struct {
	Rent          *float64 `json:"rent"`
	Deposit       *float64 `json:"deposit"`
	PaymentDueDay *int     `json:"payment_due_day,omitempty"`
}

type Dates struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Utilities are informational.
type Utilities struct {
	Included    []string `json:"included"`
	NotIncluded []string `json:"not_included"`
}

// DecodeTerms parses a request document and validates it.
// Every failure unwraps to ErrInvalidTerms or ErrMissingFields.
func DecodeTerms(raw json.RawMessage) (Terms, error) {
	if isAbsent(raw) {
		return Terms{}, missing("terms")
	}

	var t Terms

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&t); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "terms"
			}

			return Terms{}, invalid(field, fmt.Sprintf("must not be a %s", typeErr.Value))
		}

		return Terms{}, invalid("terms", "is not a JSON object")
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Terms{}, invalid("terms", "has trailing data after the object")
	}

	if err := Validate(t); err != nil {
		return Terms{}, err
	}

	return t, nil
}

// Validate checks the shape of a terms document. It reports the first offending field.
func Validate(t Terms) error {
	if t.Financial.Rent == nil {
		return missing("financial.rent")
	}

	if *t.Financial.Rent < 0 {
		return invalid("financial.rent", "must not be negative")
	}

	if t.Financial.Deposit == nil {
		return missing("financial.deposit")
	}

	if *t.Financial.Deposit < 0 {
		return invalid("financial.deposit", "must not be negative")
	}

	if d := t.Financial.PaymentDueDay; d != nil && (*d < 1 || *d > 31) {
		return invalid("financial.payment_due_day", "must be between 1 and 31")
	}

	start, err := parseDate("dates.start", t.Dates.Start)
	if err != nil {
		return err
	}

	end, err := parseDate("dates.end", t.Dates.End)
	if err != nil {
		return err
	}

	if end.Before(start) {
		return invalid("dates.end", "must not be before dates.start")
	}

	return validateUtilities(t.Utilities)
}

func parseDate(field string, s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, missing(field)
	}

	d, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return time.Time{}, invalid(field, "must be a YYYY-MM-DD date")
	}

	return d, nil
}

func validateUtilities(u Utilities) error {
	fold := cases.Fold()

	included := make(map[string]struct{}, len(u.Included))
	for _, name := range u.Included {
		included[fold.String(name)] = struct{}{}
	}

	for _, name := range u.NotIncluded {
		if _, dup := included[fold.String(name)]; dup {
			return invalid("utilities.not_included", fmt.Sprintf("%q is also listed as included", name))
		}
	}

	return nil
}

// StartDate returns the parsed dates.start of a validated document.
func (t Terms) StartDate() (time.Time, error) {
	return parseDate("dates.start", t.Dates.Start)
}

// Encode serializes the document for storage.
func (t Terms) Encode() (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding terms: %w", err)
	}

	return string(b), nil
}

// ParseStoredTerms decodes a persisted document. Malformed text fails closed with ErrCorruptTerms.
func ParseStoredTerms(text string) (Terms, error) {
	if !isObject([]byte(text)) {
		return Terms{}, fmt.Errorf("%w: stored document is not an object", ErrCorruptTerms)
	}

	var t Terms
	if err := json.Unmarshal([]byte(text), &t); err != nil {
		return Terms{}, fmt.Errorf("%w: %v", ErrCorruptTerms, err)
	}

	return t, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
