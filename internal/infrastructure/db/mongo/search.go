package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchPattern builds a case-insensitive regex that matches the text as a
// literal. Quoting keeps inputs like "(" or "a[" from being rejected by the
// server as bad regexes.
func searchPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}
