package renderer

import (
	"ytkit/innertube"
)

func init() {
	register(convertList,
		"shelfRenderer",
		"reelShelfRenderer",
		"richShelfRenderer",
		"horizontalListRenderer",
		"verticalListRenderer",
		"expandedShelfContentsRenderer",
		"gridRenderer",
		"horizontalCardListRenderer",
		"itemSectionRenderer",
		"sectionListRenderer",
		"richGridRenderer",
		"playlistVideoListRenderer",
		"chipCloudRenderer",
		"feedFilterChipBarRenderer",
		"relatedChipCloudRenderer",
		"secondarySearchContainerRenderer",
		"watchCardSectionSequenceRenderer",
		"compactAutoplayRenderer",
	)
	register(convertTab, "tabRenderer", "expandableTabRenderer")
	register(convertPlaylistPanel, "playlistPanelRenderer")
}

// convertList flattens every child list of a list container into one
// ordered section. The header, when it is a renderer, is not an item.
func convertList(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ListRenderer](n)
	if err != nil {
		return Container{}, err
	}
	s := Section{
		Title: firstText(r.Title),
		ID:    r.SectionIdentifier,
		Items: c.ConvertAll(r.Children()),
	}
	if s.ID == "" {
		s.ID = r.PlaylistID
	}
	if s.ID == "" {
		s.ID = r.TargetID
	}
	if s.Title == "" && r.Header != nil {
		s.Title = headerTitle(*r.Header)
	}
	if e := r.Endpoint.Resolve(); e != nil && e.BrowseEndpoint != nil {
		s.BrowseID = e.BrowseEndpoint.BrowseID
		s.Params = e.BrowseEndpoint.Params
	}
	return newContainer(n.Kind, s), nil
}

// headerTitle reads the title of a shelf header renderer.
func headerTitle(n innertube.Node) string {
	var h struct {
		Title *innertube.Text `json:"title"`
	}
	if n.Decode(&h) != nil {
		return ""
	}
	return firstText(h.Title)
}

// convertTab projects a browse tab. A tab whose content is a section list
// or a rich grid exposes the list items directly.
func convertTab(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.TabRenderer](n)
	if err != nil {
		return Container{}, err
	}
	s := Section{Title: r.Title, Selected: r.Selected, Items: []Container{}}
	if e := r.Endpoint.Resolve(); e != nil && e.BrowseEndpoint != nil {
		s.BrowseID = e.BrowseEndpoint.BrowseID
		s.Params = e.BrowseEndpoint.Params
	}
	if content := c.convertOne(r.Content); content != nil {
		flat := content.OriginalVariant == "sectionListRenderer" || content.OriginalVariant == "richGridRenderer"
		if flat && content.Category == CategoryContainer {
			s.Items = content.Children()
		} else {
			s.Items = []Container{*content}
		}
	}
	return newContainer(n.Kind, s), nil
}

func convertPlaylistPanel(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.PlaylistPanelRenderer](n)
	if err != nil {
		return Container{}, err
	}
	items := c.ConvertAll(append(append([]innertube.Node{}, r.Contents...), r.Continuations...))
	return newContainer(n.Kind, Section{Title: r.Title, ID: r.PlaylistID, Items: items}), nil
}
