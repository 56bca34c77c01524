package service

import "strings"

// CheckAnswer reports whether userInput names expectedName. Surrounding
// whitespace in the input is ignored and letters are compared under simple
// case folding.
func CheckAnswer(expectedName, userInput string) bool {
	return strings.EqualFold(expectedName, strings.TrimSpace(userInput))
}
