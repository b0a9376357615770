// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"testing"
)

func TestPairAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
		want bool
	}{
		{name: "empty pair", pair: Pair{}, want: false},
		{name: "access token only", pair: Pair{AccessToken: "at"}, want: true},
		{name: "refresh token only", pair: Pair{RefreshToken: "rt"}, want: false},
		{name: "full pair", pair: Pair{AccessToken: "at", RefreshToken: "rt"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pair.Authenticated(); got != tt.want {
				t.Errorf("Authenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if p := store.Load(); p.Authenticated() {
		t.Fatalf("fresh store Load() = %+v, want empty", p)
	}

	pair := Pair{AccessToken: "at1", RefreshToken: "rt1"}
	if err := store.Save(pair); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := store.Load(); got != pair {
		t.Errorf("Load() = %+v, want %+v", got, pair)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Load(); got != (Pair{}) {
		t.Errorf("Load() after Clear() = %+v, want empty", got)
	}

	// Clearing an empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}
