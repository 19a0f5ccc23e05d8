package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "", "not-a-date"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}

	date, ok := IsValidDate("2024-01-15")
	if !ok {
		t.Fatal("IsValidDate(2024-01-15) = false, want true")
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("IsValidDate(2024-01-15) = %v, want %v", date, want)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "dept", Message: "dept is required"},
	}

	if got := errs.Error(); got != "name: name is required; dept: dept is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["name"] != "name is required" || m["dept"] != "dept is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
