package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/validate"
)

// CategoryInput creates or replaces a category.
type CategoryInput struct {
	Name        string  `json:"nome"`
	Description *string `json:"descricao"`
}

func (i *CategoryInput) normalize() {
	i.Name = domain.NormalizeText(i.Name)
	i.Description = domain.OptionalText(i.Description)
}

// Validate validates the category input.
func (i CategoryInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Description, validation.Length(0, 2000)),
	)
}

// InsectInput creates an insect.
type InsectInput struct {
	CommonName     string  `json:"nome_comum"`
	ScientificName *string `json:"nome_cientifico"`
	CategoryID     *int64  `json:"id_categoria"`
	Description    *string `json:"descricao"`
	Habitat        *string `json:"habitat"`
	Behavior       *string `json:"comportamento"`
}

func (i *InsectInput) normalize() {
	i.CommonName = domain.NormalizeText(i.CommonName)
	i.ScientificName = domain.OptionalText(i.ScientificName)
	i.Description = domain.OptionalText(i.Description)
	i.Habitat = domain.OptionalText(i.Habitat)
	i.Behavior = domain.OptionalText(i.Behavior)
}

// Validate validates the insect input.
func (i InsectInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.CommonName, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.ScientificName, validation.Length(0, 255)),
		validation.Field(&i.CategoryID, validation.Min(1)),
	)
}

// insectFields maps the wire names of updatable insect fields.
var insectFields = map[string]struct{}{
	"nome_comum":      {},
	"nome_cientifico": {},
	"id_categoria":    {},
	"descricao":       {},
	"habitat":         {},
	"comportamento":   {},
}

// PatchFromFields turns a submitted field map into an insect patch.
// Unknown fields are rejected rather than ignored. A null optional field
// clears it; nome_comum may not be cleared.
func PatchFromFields(fields map[string]json.RawMessage) (domain.InsectPatch, error) {
	var (
		patch domain.InsectPatch
		errs  []domain.FieldError
	)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := fields[name]
		if _, ok := insectFields[name]; !ok {
			errs = append(errs, domain.FieldError{Field: name, Message: "unknown field"})
			continue
		}

		if name == "id_categoria" {
			id, clear, err := parseCategoryID(raw)
			switch {
			case err != nil:
				errs = append(errs, domain.FieldError{Field: name, Message: err.Error()})
			case clear:
				patch.ClearCategory = true
			default:
				patch.CategoryID = &id
			}
			continue
		}

		text, isNull, err := parseText(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: err.Error()})
			continue
		}

		switch name {
		case "nome_comum":
			text = domain.NormalizeText(text)
			if isNull || text == "" {
				errs = append(errs, domain.FieldError{Field: name, Message: "cannot be blank"})
				continue
			}
			patch.CommonName = &text
		case "nome_cientifico":
			patch.ScientificName = &text
		case "descricao":
			patch.Description = &text
		case "habitat":
			patch.Habitat = &text
		case "comportamento":
			patch.Behavior = &text
		}
	}

	if len(errs) > 0 {
		return domain.InsectPatch{}, domain.NewValidationErrors(errs)
	}
	return patch, nil
}

// parseText accepts a JSON string or null. Null comes back as "".
func parseText(raw json.RawMessage) (string, bool, error) {
	if isJSONNull(raw) {
		return "", true, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, fmt.Errorf("must be a string")
	}
	return strings.TrimSpace(s), false, nil
}

// parseCategoryID accepts a positive integer, a numeric string, or null.
func parseCategoryID(raw json.RawMessage) (int64, bool, error) {
	if isJSONNull(raw) {
		return 0, true, nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false, fmt.Errorf("must be an integer")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, true, nil
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return 0, false, fmt.Errorf("must be a positive integer")
		}
		return id, false, nil
	}

	if n <= 0 || n != math.Trunc(n) || n > math.MaxInt64 {
		return 0, false, fmt.Errorf("must be a positive integer")
	}
	return int64(n), false, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// InsectDetail is an insect with its attachments.
type InsectDetail struct {
	Insect      *domain.Insect
	Attachments []domain.Attachment
}
