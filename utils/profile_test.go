package utils

import (
	"strings"
	"testing"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/models"
)

func TestRegistrationProfileText(t *testing.T) {
	user := &models.User{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@x.com",
		Standard:  "10",
	}
	got := RegistrationProfileText(user)
	want := "Alice Smith alice alice@x.com class 10"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRegistrationProfileTextNoStandard(t *testing.T) {
	user := &models.User{FirstName: "Bob", Username: "bob", Email: "bob@x.com"}
	got := RegistrationProfileText(user)
	if got != "Bob bob bob@x.com" {
		t.Errorf("Unexpected text: %q", got)
	}
}

func TestProfileTextOmitsBlankFields(t *testing.T) {
	user := &models.User{
		FirstName: "Alice",
		Username:  "alice",
		Email:     "alice@x.com",
		Bio:       "likes math",
		Subjects:  []string{"math", "physics"},
	}
	got := ProfileText(user)

	for _, want := range []string{"Name: Alice", "Username: alice", "Bio: likes math", "Subjects: math, physics"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected text to contain %q, got %q", want, got)
		}
	}
	for _, absent := range []string{"School:", "Class:"} {
		if strings.Contains(got, absent) {
			t.Errorf("Blank field %q should be omitted, got %q", absent, got)
		}
	}
}
