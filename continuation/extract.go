package continuation

import (
	"ytkit/renderer"
)

// Extract returns the token of the trailing continuation of a normalized
// listing. When the list itself does not end in a continuation, the marker
// is looked up where the family nests it: the playlist video list, the
// comment section, or the last section of a result page.
func Extract(items []renderer.Container, family Family) (Token, bool) {
	if v, ok := trailing(items); ok {
		return Token{Family: family, Value: v}, true
	}

	var section *renderer.Container
	switch family {
	case FamilyPlaylist:
		section = find(items, func(c renderer.Container) bool {
			return c.OriginalVariant == "playlistVideoListRenderer"
		})
	case FamilyComments:
		section = find(items, func(c renderer.Container) bool {
			s, ok := c.Data.(renderer.Section)
			return ok && s.ID == "comment-item-section"
		})
	case FamilyBrowse:
		section = find(items, func(c renderer.Container) bool {
			switch c.OriginalVariant {
			case "gridRenderer", "richGridRenderer", "playlistVideoListRenderer":
				return true
			}
			return false
		})
	}
	if section == nil {
		section = lastSection(items)
	}
	if section == nil {
		return Token{}, false
	}
	if v, ok := trailing(section.Children()); ok {
		return Token{Family: family, Value: v}, true
	}
	return Token{}, false
}

// Strip returns items without its trailing continuation.
func Strip(items []renderer.Container) []renderer.Container {
	if _, ok := trailing(items); ok {
		return items[:len(items)-1]
	}
	return items
}

func trailing(items []renderer.Container) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	c, ok := items[len(items)-1].Data.(renderer.Continuation)
	if !ok || c.Token == "" {
		return "", false
	}
	return c.Token, true
}

// find walks the container tree depth first.
func find(items []renderer.Container, match func(renderer.Container) bool) *renderer.Container {
	for i := range items {
		if match(items[i]) {
			return &items[i]
		}
		if found := find(items[i].Children(), match); found != nil {
			return found
		}
	}
	return nil
}

func lastSection(items []renderer.Container) *renderer.Container {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Category == renderer.CategoryContainer {
			return &items[i]
		}
	}
	return nil
}

// FromChip returns the token that reloads a listing with a chip's filter
// applied.
func FromChip(c renderer.Container, family Family) (Token, bool) {
	chip, ok := c.Data.(renderer.Chip)
	if !ok || chip.Token == "" {
		return Token{}, false
	}
	return Token{Family: family, Value: chip.Token}, true
}
