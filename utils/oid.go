package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
)

func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}

// ParseID parses a path or query identifier, reporting a validation error
// that names the offending field.
func ParseID(field, hex string) (bson.ObjectID, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return bson.NilObjectID, apperror.Validationf("%s is required", field)
	}
	oid, err := Oid(hex)
	if err != nil {
		return bson.NilObjectID, apperror.Validationf("invalid %s", field)
	}
	return oid, nil
}
