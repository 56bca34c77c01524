// Package entities contains domain entities used across the application.
package entities

// Cow is a single catalog entry: the name a player has to guess and
// the image shown for it.
type Cow struct {
	Name  string `json:"name"`  // name of the cow as it should be guessed
	Image string `json:"image"` // image file name, resolved against the images directory
}
