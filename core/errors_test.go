package core

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestTextCodeFor(t *testing.T) {
	cases := []struct {
		category goerrors.Category
		want     string
	}{
		{category: goerrors.CategoryBadInput, want: ErrorBadInput},
		{category: goerrors.CategoryValidation, want: ErrorBadInput},
		{category: goerrors.CategoryExternal, want: ErrorExternal},
		{category: goerrors.CategoryOperation, want: ErrorExternal},
		{category: goerrors.CategoryInternal, want: ErrorInternal},
		{category: goerrors.CategoryNotFound, want: ErrorInternal},
	}
	for _, tc := range cases {
		if got := TextCodeFor(tc.category); got != tc.want {
			t.Fatalf("TextCodeFor(%v) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
