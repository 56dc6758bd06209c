package domain

import "net/url"

const avatarBase = "https://picsum.photos/seed/"

// AvatarURL derives a stable placeholder image from a seed string.
func AvatarURL(seed string) string {
	return avatarBase + url.PathEscape(seed) + "/100/100"
}
