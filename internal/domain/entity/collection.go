package entity

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Collection names a document collection in the store.
type Collection string

const (
	CollectionEvents   Collection = "events"
	CollectionBlogs    Collection = "blogs"
	CollectionProjects Collection = "projects"
	CollectionPosts    Collection = "posts"
	CollectionUsers    Collection = "users"
	CollectionTeams    Collection = "teams"
)

// String returns the string representation of the Collection.
func (c Collection) String() string {
	return string(c)
}

// IsValid checks if the Collection is known.
func (c Collection) IsValid() bool {
	switch c {
	case CollectionEvents, CollectionBlogs, CollectionProjects, CollectionPosts, CollectionUsers, CollectionTeams:
		return true
	default:
		return false
	}
}

// Kind returns the content kind stored in this collection.
func (c Collection) Kind() (Kind, bool) {
	for _, kind := range Kinds() {
		if kind.Collection() == c {
			return kind, true
		}
	}

	return "", false
}

// Document is any stored record a live reader can order.
type Document interface {
	// DocumentID returns the store-assigned id.
	DocumentID() string
	// FieldValue returns the value of a top-level field used for ordering.
	FieldValue(field string) (any, bool)
}

// Order describes how a live reader orders a snapshot.
type Order struct {
	Field      string
	Descending bool
}

// DefaultOrder returns the order used when a reader does not ask for one.
func DefaultOrder(c Collection) Order {
	switch c {
	case CollectionTeams:
		return Order{Field: "order"}
	case CollectionUsers:
		return Order{Field: "uid"}
	}

	return Order{Field: "date", Descending: true}
}

// SortDocuments orders docs in place. Documents missing the field sort last;
// equal values fall back to ascending document id so the result is deterministic.
func SortDocuments(docs []Document, order Order) {
	slices.SortStableFunc(docs, func(a, b Document) int {
		av, aok := a.FieldValue(order.Field)
		bv, bok := b.FieldValue(order.Field)

		switch {
		case !aok && !bok:
		case !aok:
			return 1
		case !bok:
			return -1
		default:
			c := compareValues(av, bv)
			if order.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}

		return strings.Compare(a.DocumentID(), b.DocumentID())
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		if at, aerr := ParseDate(av); aerr == nil {
			if bt, berr := ParseDate(bv); berr == nil {
				return at.Compare(bt)
			}
		}

		return strings.Compare(av, bv)
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return 0
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the ISO-8601 date forms accepted for the date field.
func ParseDate(s string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	for _, layout := range dateLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return t, err
}
