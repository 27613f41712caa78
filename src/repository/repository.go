// Package repository holds the per-collection data access layer over
// *mongo.Database. Every method translates driver errors into the
// application's error taxonomy so services and tests never see raw
// driver errors.
package repository

import (
	"errors"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func wrapFindErr(err error, resource string, id interface{}) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}

func internalErr(err error) error {
	return models.NewInternalError(err)
}

// exactNameFilter matches a name exactly, case-insensitive.
func exactNameFilter(name string) bson.M {
	return bson.M{
		"$regex":   "^" + regexEscape(name) + "$",
		"$options": "i",
	}
}

func regexEscape(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]rune, 0, len(s))
	for _, r := range s {
		for _, sp := range special {
			if r == sp {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, r)
	}
	return string(out)
}
