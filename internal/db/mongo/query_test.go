package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildQuery_Empty(t *testing.T) {
	q := buildQuery(filter.NewExpression())
	if len(q) != 0 {
		t.Errorf("expected empty query, got %v", q)
	}
}

func TestBuildQuery_Substring(t *testing.T) {
	f := filter.NewBuilder().Substring("name", "pro").Build()
	q := buildQuery(f)

	want := bson.M{"name": bson.M{"$regex": "pro", "$options": "i"}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestBuildQuery_SubstringEscapesRegexMeta(t *testing.T) {
	f := filter.NewBuilder().Substring("name", "11.9 (Pro)").Build()
	q := buildQuery(f)

	inner, ok := q["name"].(bson.M)
	if !ok {
		t.Fatalf("expected nested query doc, got %v", q["name"])
	}
	if inner["$regex"] == "11.9 (Pro)" {
		t.Error("regex metacharacters must be escaped for substring semantics")
	}
}

func TestBuildQuery_Equals(t *testing.T) {
	f := filter.NewBuilder().Equals("chip", "M4").Build()
	q := buildQuery(f)

	want := bson.M{"chip": "M4"}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestBuildQuery_RangeBothBounds(t *testing.T) {
	f := filter.NewBuilder().Range("display_size", floatPtr(10), floatPtr(13)).Build()
	q := buildQuery(f)

	want := bson.M{"display_size": bson.M{"$gte": 10.0, "$lte": 13.0}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestBuildQuery_RangeLowerOnly(t *testing.T) {
	f := filter.NewBuilder().Range("display_size", floatPtr(11), nil).Build()
	q := buildQuery(f)

	want := bson.M{"display_size": bson.M{"$gte": 11.0}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestBuildQuery_Combined(t *testing.T) {
	f := filter.NewBuilder().
		Substring("name", "air").
		Equals("chip", "M2").
		Range("display_size", nil, floatPtr(13)).
		Build()
	q := buildQuery(f)

	if len(q) != 3 {
		t.Errorf("expected 3 top-level fields, got %v", q)
	}
}
