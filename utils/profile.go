package utils

import (
	"strings"

	"github.com/nickhil-verma/CYVIX-gamifiedlearningPlatform/models"
)

// FullName joins first and last name, tolerating a missing last name
func FullName(user *models.User) string {
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}

// RegistrationProfileText composes the short profile string embedded at
// registration time.
func RegistrationProfileText(user *models.User) string {
	parts := []string{FullName(user), user.Username, user.Email}
	if user.Standard != "" {
		parts = append(parts, "class "+user.Standard)
	}
	return strings.Join(parts, " ")
}

// ProfileText composes the richer profile string embedded on profile updates.
// Blank fields are omitted.
func ProfileText(user *models.User) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("Name", FullName(user))
	add("Username", user.Username)
	add("Email", user.Email)
	add("Bio", user.Bio)
	add("School", user.School)
	add("Subjects", strings.Join(user.Subjects, ", "))
	add("Class", user.Standard)
	return strings.Join(parts, ". ")
}

// DefaultAvatarURL builds a DiceBear avatar for users who did not set one
func DefaultAvatarURL(seed string) string {
	return "https://api.dicebear.com/9.x/adventurer/svg?seed=" + seed
}
