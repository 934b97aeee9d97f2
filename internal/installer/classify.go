package installer

import "strings"

// alreadyInstalledMarker is the phrase brew prints on stderr when asked to
// install something that is already present. Idempotent installs depend on
// this wording; if brew rephrases it, every reinstall surfaces as a failure.
const alreadyInstalledMarker = "already installed"

// Classifier decides whether a failed install's stderr actually means the
// package is already in place.
type Classifier func(stderr string) bool

// AlreadyInstalled is the default Classifier.
func AlreadyInstalled(stderr string) bool {
	return strings.Contains(stderr, alreadyInstalledMarker)
}
