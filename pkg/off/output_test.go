package off

import (
	"reflect"
	"testing"
)

func TestOutputParamsWhitelist(t *testing.T) {
	out := NewOutput().Page(22).Fields("url").Nocache(true)

	got := out.params(optPage, optFields)
	want := Params{{"page", "22"}, {"fields", "url"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params() = %v, want %v", got, want)
	}
}

func TestOutputParamsCanonicalOrder(t *testing.T) {
	// Setter order must not leak into emission order.
	out := NewOutput().Nocache(false).Fields("url", "code").PageSize(20).Page(2)

	got := out.params(optPage, optPageSize, optFields, optNocache)
	want := Params{
		{"page", "2"},
		{"page_size", "20"},
		{"fields", "url,code"},
		{"nocache", "false"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params() = %v, want %v", got, want)
	}
}

func TestOutputParamsUnsetOptions(t *testing.T) {
	out := NewOutput().Locale(NewLocale("fr"))

	if got := out.params(optPage, optPageSize, optFields, optNocache); got != nil {
		t.Errorf("params() = %v, want nil", got)
	}
}

func TestOutputParamsNilReceiver(t *testing.T) {
	var out *Output
	if got := out.params(optPage); got != nil {
		t.Errorf("params() on nil = %v, want nil", got)
	}
	if got := out.loc(); got != nil {
		t.Errorf("loc() on nil = %v, want nil", got)
	}
}

func TestOutputPagination(t *testing.T) {
	out := NewOutput().Pagination(3, 50)

	got := out.params(optPage, optPageSize)
	want := Params{{"page", "3"}, {"page_size", "50"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params() = %v, want %v", got, want)
	}
}

func TestOutputLocaleNeverEmitted(t *testing.T) {
	out := NewOutput().Locale(NewLocale("fr")).Page(1)

	for _, p := range out.params(optPage, optPageSize, optFields, optNocache) {
		if p.Name == "locale" || p.Value == "fr" {
			t.Errorf("locale leaked into query parameters: %v", p)
		}
	}
	if out.loc() == nil || out.loc().Country != "fr" {
		t.Errorf("loc() = %v, want fr locale", out.loc())
	}
}
