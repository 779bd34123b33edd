package completion

import (
	"strings"

	"creator-api/internal/common/errors"
	"creator-api/internal/common/validation"
)

// Conform checks a Valid result against schema. Empty and Malformed results are
// never checked. Violations are always returned; they become a
// MALFORMED_RESPONSE error only when strict is set.
func Conform(result *Result, schema *validation.OutputSchema, strict bool) ([]string, error) {
	if result == nil || result.Outcome != Valid || schema == nil {
		return nil, nil
	}

	violations, err := schema.Validate(result.Object)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if len(violations) > 0 && strict {
		return violations, errors.NewMalformedResponseError(strings.Join(violations, "; "))
	}
	return violations, nil
}
