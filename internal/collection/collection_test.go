package collection

import (
	"testing"

	"taxiadmin/internal/domain"
)

func sampleUsers() []*domain.User {
	return []*domain.User{
		{ID: 1, FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
		{ID: 2, FirstName: "Bobur", LastName: "Aliyev", Email: "bobur@example.com"},
		{ID: 3, FirstName: "Malika", LastName: "Karimova", Email: "malika@example.com"},
	}
}

func TestSearch_MatchesAnyField(t *testing.T) {
	col := New(sampleUsers())
	fields := []string{"first_name", "last_name", "email"}

	got := col.Search("smith", fields)
	if got.Count() != 1 {
		t.Fatalf("expected 1 match for smith, got %d", got.Count())
	}
	first, _ := got.First()
	if first.ID != 1 {
		t.Errorf("expected user 1, got %d", first.ID)
	}

	// Case-insensitive, substring, different field.
	if got := col.Search("ALIY", fields); got.Count() != 1 {
		t.Errorf("expected 1 match for ALIY, got %d", got.Count())
	}

	if got := col.Search("example.com", fields); got.Count() != 3 {
		t.Errorf("expected all 3 to match on email domain, got %d", got.Count())
	}

	if got := col.Search("nobody", fields); got.Count() != 0 {
		t.Errorf("expected no matches, got %d", got.Count())
	}
}

func TestSearch_EmptyTermMatchesEverything(t *testing.T) {
	col := New(sampleUsers())
	if got := col.Search("", []string{"first_name"}); got.Count() != 3 {
		t.Errorf("empty term should match all, got %d", got.Count())
	}
}

func TestSearch_DottedPath(t *testing.T) {
	docs := []*domain.DriverDocument{
		{ID: 1, User: &domain.User{FirstName: "Jane", LastName: "Smith"}, CarBrand: "Chevrolet"},
		{ID: 2, User: &domain.User{FirstName: "Bobur", LastName: "Aliyev"}, CarBrand: "Kia"},
		{ID: 3, User: nil, CarBrand: "Chevrolet"},
	}
	col := New(docs)

	got := col.Search("smith", []string{"user.first_name", "user.last_name", "car_brand"})
	if got.Count() != 1 {
		t.Fatalf("expected 1 match via nested path, got %d", got.Count())
	}

	// The nil-user document must not panic and must still match on its own
	// fields.
	got = col.Search("chevrolet", []string{"user.first_name", "car_brand"})
	if got.Count() != 2 {
		t.Errorf("expected 2 chevrolets, got %d", got.Count())
	}
}

func TestSearch_MissingFieldIsNoMatch(t *testing.T) {
	col := New(sampleUsers())
	if got := col.Search("jane", []string{"no_such_field"}); got.Count() != 0 {
		t.Errorf("unknown field should never match, got %d", got.Count())
	}
}

func TestSlice(t *testing.T) {
	col := New(sampleUsers())

	page := col.Slice(0, 2)
	if page.Count() != 2 {
		t.Errorf("expected 2 items, got %d", page.Count())
	}

	// Clamped bounds.
	if got := col.Slice(2, 10).Count(); got != 1 {
		t.Errorf("expected 1 item in clamped slice, got %d", got)
	}
	if got := col.Slice(5, 10).Count(); got != 0 {
		t.Errorf("expected empty slice past the end, got %d", got)
	}
	if got := col.Slice(-3, 2).Count(); got != 2 {
		t.Errorf("expected negative from to clamp to 0, got %d", got)
	}

	// The result is a Collection, so operations keep chaining.
	if got := page.Search("jane", []string{"first_name"}).Count(); got != 1 {
		t.Errorf("expected chained search to work on a page, got %d", got)
	}
}

func TestAccessors(t *testing.T) {
	col := New(sampleUsers())

	if !col.Exists() {
		t.Error("expected Exists to be true")
	}
	if col.Count() != 3 {
		t.Errorf("expected count 3, got %d", col.Count())
	}
	first, ok := col.First()
	if !ok || first.ID != 1 {
		t.Errorf("expected first to be user 1, got %+v", first)
	}
	last, ok := col.Last()
	if !ok || last.ID != 3 {
		t.Errorf("expected last to be user 3, got %+v", last)
	}

	empty := New([]*domain.User{})
	if empty.Exists() {
		t.Error("expected empty collection not to exist")
	}
	if _, ok := empty.First(); ok {
		t.Error("expected First on empty to report false")
	}
	if _, ok := empty.Last(); ok {
		t.Error("expected Last on empty to report false")
	}
}

func TestQuerysetMethodsAreIdentity(t *testing.T) {
	col := New(sampleUsers())

	testCases := []struct {
		name string
		got  *Collection[*domain.User]
	}{
		{"Filter", col.Filter("status", "active")},
		{"Exclude", col.Exclude("role", "admin")},
		{"OrderBy", col.OrderBy("-created_at")},
		{"Distinct", col.Distinct()},
		{"SelectRelated", col.SelectRelated("user")},
		{"All", col.All()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != col {
				t.Errorf("%s should return the same collection untouched", tc.name)
			}
		})
	}
}
