package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/glowmart/shop-api/internal/core/ports"
)

// buildProductFilter composes the listing query from the optional criteria.
// Each present field contributes exactly one sub-condition; the resulting
// document is the logical AND of all of them, and an all-absent criteria set
// produces the empty filter that matches every product.
//
// Composition never fails: criteria that cannot match anything (an inverted
// price range, a malformed category id) are emitted as-is and simply select
// nothing.
func buildProductFilter(f ports.ProductFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		// Case-insensitive substring match over name or description. This is
		// the only place where OR appears; criteria of different kinds always
		// combine with AND.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
		}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if f.Brand != "" {
		filter["brand"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.Brand) + "$", Options: "i"}
	}

	// The flags are tri-state: only an explicit true constrains the result.
	// false and absent both mean "don't care", never "must be false".
	if f.Bestseller != nil && *f.Bestseller {
		filter["bestseller"] = true
	}
	if f.NewArrival != nil && *f.NewArrival {
		filter["new_arrival"] = true
	}

	if f.CategoryID != "" {
		if oid, err := primitive.ObjectIDFromHex(f.CategoryID); err == nil {
			filter["category_id"] = oid
		} else {
			// A malformed id can never equal a stored ObjectID; keep the
			// condition so the query matches nothing instead of everything.
			filter["category_id"] = f.CategoryID
		}
	}

	return filter
}
