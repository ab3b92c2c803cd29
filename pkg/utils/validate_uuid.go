package utils

import "github.com/gofrs/uuid"

// ParseUUID parses a path parameter, reporting false for anything that is not a UUID.
func ParseUUID(value string) (uuid.UUID, bool) {
	id, err := uuid.FromString(value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
