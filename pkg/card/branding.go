// branding.go - Platform badge resolution.
package card

import "image/color"

// LogoPrefix is the directory prefix of bundled platform logo
// references. Image sources may rewrite it to a configured directory.
const LogoPrefix = "assets/logos/"

// Logo references resolved through the render's ImageSource.
const (
	backloggdLogo  = LogoPrefix + "backloggd_logo.png"
	letterboxdLogo = LogoPrefix + "letterboxd_logo.png"
)

// Branding carries everything the badge needs: display name, a logo
// reference, the accent drawn when the logo cannot be loaded, and the
// username for the label.
type Branding struct {
	Name     string
	Logo     string
	Accent   color.RGBA
	Username string
}

// ResolveBranding maps a platform onto its badge inputs. The second
// return is false for PlatformNone, meaning no badge is drawn. The
// switch is exhaustive over the closed Platform set.
func ResolveBranding(p Platform, username string) (Branding, bool) {
	switch p {
	case PlatformBackloggd:
		return Branding{
			Name:     "Backloggd",
			Logo:     backloggdLogo,
			Accent:   color.RGBA{139, 92, 246, 255},
			Username: username,
		}, true
	case PlatformLetterboxd:
		return Branding{
			Name:     "Letterboxd",
			Logo:     letterboxdLogo,
			Accent:   color.RGBA{255, 128, 0, 255},
			Username: username,
		}, true
	default:
		return Branding{}, false
	}
}

// Label is the badge text: "Name @username", or just the platform
// name when no username is set.
func (b Branding) Label() string {
	if b.Username == "" {
		return b.Name
	}
	return b.Name + " @" + b.Username
}
