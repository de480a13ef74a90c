package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
)

// buildQuery translates a portable filter expression into a MongoDB query
// document. Substring conditions become case-insensitive regexes, equality
// stays plain, ranges map to $gte/$lte.
func buildQuery(f filter.Expression) bson.M {
	q := bson.M{}
	for _, c := range f.Conditions() {
		switch c.Kind() {
		case filter.KindSubstring:
			q[c.Key()] = bson.M{"$regex": regexp.QuoteMeta(c.Match()), "$options": "i"}
		case filter.KindEquals:
			q[c.Key()] = c.Match()
		case filter.KindRange:
			rng := bson.M{}
			if min := c.Min(); min != nil {
				rng["$gte"] = *min
			}
			if max := c.Max(); max != nil {
				rng["$lte"] = *max
			}
			q[c.Key()] = rng
		}
	}
	return q
}
