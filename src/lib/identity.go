package lib

import (
	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID resolves an external identifier string into an ObjectID. Anything
// that is not the store's 24-character hex format fails with invalid_id.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, models.NewInvalidIDError(raw)
	}
	return id, nil
}

// IsID reports whether raw is a well-formed identifier. Lookup-by-id-or-name
// endpoints branch on this.
func IsID(raw string) bool {
	return primitive.IsValidObjectID(raw)
}
