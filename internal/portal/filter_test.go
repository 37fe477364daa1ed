package portal

import "testing"

func TestBuildFilter(t *testing.T) {
	cases := []struct {
		attribute string
		operator  string
		value     string
		want      string
	}{
		{"name", OpContains, "portal", `name co "portal"`},
		{"userName", OpStartsWith, "ali", `userName sw "ali"`},
		{"category", OpContains, `app"lication`, `category co "application"`},
	}
	for _, tc := range cases {
		if got := BuildFilter(tc.attribute, tc.operator, tc.value); got != tc.want {
			t.Fatalf("BuildFilter(%q, %q, %q) = %q, want %q", tc.attribute, tc.operator, tc.value, got, tc.want)
		}
	}
}

func TestCombineFilters(t *testing.T) {
	got := CombineFilters(`category co "application"`, "", `category co "default"`)
	want := `category co "application" | category co "default"`
	if got != want {
		t.Fatalf("CombineFilters = %q, want %q", got, want)
	}
}

func TestPageNormalize(t *testing.T) {
	page := Page{Limit: -5, Offset: -1}.Normalize()
	if page.Limit != DefaultPageSize || page.Offset != 0 {
		t.Fatalf("Normalize = %+v", page)
	}
	if got := page.StartIndex(); got != 1 {
		t.Fatalf("StartIndex = %d, want 1", got)
	}
	next := page.Next()
	if next.Offset != DefaultPageSize {
		t.Fatalf("Next offset = %d", next.Offset)
	}
}
