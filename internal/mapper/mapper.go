// Package mapper converts between domain entities and their transfer
// objects. Conversions are stateless and lossless; the only way a
// conversion can fail is a malformed numeric id in a DTO. Field content
// is not validated here.
package mapper

import (
	"strconv"

	"travelagency/internal/apperror"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// parseID converts a textual id back to its internal integer form.
// The entity name only feeds the returned error.
func parseID(entity, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidID(entity, raw)
	}
	return id, nil
}
