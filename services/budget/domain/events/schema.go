package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	"github.com/cotadorplus/cotador/services/budget/domain"
)

// ValidateBudgetCreated checks msg against the BudgetCreated schema. It returns
// an error wrapping domain.ErrSchemaValidation that lists every failing field.
func ValidateBudgetCreated(msg BudgetCreatedMessage) error {
	if err := pkgvalidator.Validate(&msg); err != nil {
		fields := pkgvalidator.FieldPaths(err)
		if len(fields) == 0 {
			return fmt.Errorf("%w: %w", domain.ErrSchemaValidation, err)
		}
		return fmt.Errorf("%w: %s", domain.ErrSchemaValidation, strings.Join(fields, "; "))
	}
	return nil
}

// DecodeBudgetCreated parses and validates a BudgetCreated message. Unknown
// fields are rejected.
func DecodeBudgetCreated(data []byte) (BudgetCreatedMessage, error) {
	var msg BudgetCreatedMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&msg); err != nil {
		return BudgetCreatedMessage{}, fmt.Errorf("%w: decode: %w", domain.ErrSchemaValidation, err)
	}
	if err := ValidateBudgetCreated(msg); err != nil {
		return BudgetCreatedMessage{}, err
	}
	return msg, nil
}
