package auth

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"ROLE_ADMIN": "ADMIN",
		"role_staff": "STAFF",
		" doctor ":   "DOCTOR",
		"OWNER":      "OWNER",
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
	if got := Authority("admin"); got != "ROLE_ADMIN" {
		t.Fatalf("Authority = %q", got)
	}
}

func TestClaims_HasRole(t *testing.T) {
	c := Claims{UserID: 1, Email: "staff@example.com", Role: "STAFF"}
	if !c.HasRole("ADMIN", "ROLE_STAFF") {
		t.Fatalf("expected staff to match")
	}
	if c.HasRole("ADMIN", "DOCTOR") {
		t.Fatalf("expected no match")
	}
}
