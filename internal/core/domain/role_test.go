package domain_test

import (
	"testing"

	"go.trai.ch/rolegraph/internal/core/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"checkout-1", "checkout"},
		{"checkout-2", "checkout"},
		{"checkout-123", "checkout"},
		{"checkout", "checkout"},
		{"checkout-api", "checkout-api"},
		{"checkout2", "checkout2"},
		{"svc2-1", "svc2"},
		{"svc-1-2", "svc"},
		{"svc-", "svc-"},
		{"-1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := domain.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"a", "a-1", "a-1-2", "a-b-3", "a2-7", "-9", "x--1", "web-01"}
	for _, in := range inputs {
		once := domain.Normalize(in)
		if twice := domain.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRole_Interned(t *testing.T) {
	a := domain.NewRole("checkout")
	b := domain.RoleOf("checkout-7")

	if a != b {
		t.Error("expected roles with the same normalized name to be equal")
	}
	if b.String() != "checkout" {
		t.Errorf("expected checkout, got %s", b.String())
	}

	var zero domain.Role
	if !zero.IsZero() || zero.String() != "" {
		t.Error("expected zero role to be empty")
	}
}

func TestRole_Text(t *testing.T) {
	r := domain.NewRole("payments")
	text, err := r.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var back domain.Role
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if back != r {
		t.Errorf("expected %s, got %s", r, back)
	}
}

func TestExclusion_Matches(t *testing.T) {
	ex := domain.NewExclusion(domain.DefaultExcludeMarkers...)

	tests := []struct {
		name string
		want bool
	}{
		{"orders-mysql", true},
		{"redis-cache", true},
		{"mysqlproxy", true},
		{"orders", false},
		{"red-is", false},
	}
	for _, tt := range tests {
		if got := ex.Matches(tt.name); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExclusion_IgnoresEmptyMarkers(t *testing.T) {
	ex := domain.NewExclusion("", "  ")
	if ex.Matches("anything") {
		t.Error("empty markers must not match every name")
	}
	if len(ex.Markers()) != 0 {
		t.Errorf("expected no markers, got %v", ex.Markers())
	}
}
