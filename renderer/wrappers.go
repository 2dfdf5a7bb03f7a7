package renderer

import (
	"ytkit/innertube"
)

// wrappers hold content nodes and carry no data of their own. ConvertAll
// splices their children into the parent list.
var wrappers = map[string]struct{}{
	"richItemRenderer":               {},
	"richSectionRenderer":            {},
	"adSlotRenderer":                 {},
	"backstagePostThreadRenderer":    {},
	"channelFeaturedContentRenderer": {},
}

// adShells are promoted placements with no organic content.
var adShells = map[string]bool{
	"promotedSparklesWebRenderer":  true,
	"searchPyvRenderer":            true,
	"promotedVideoRenderer":        true,
	"inFeedAdLayoutRenderer":       true,
	"compactPromotedVideoRenderer": true,
	"statementBannerRenderer":      true,
	"brandVideoShelfRenderer":      true,
	"brandVideoSingletonRenderer":  true,
	"displayAdRenderer":            true,
	"adSlotAndLayoutRenderer":      true,
}

func init() {
	for w := range wrappers {
		register(convertWrapper, w)
	}
	for s := range adShells {
		register(convertAdShell, s)
	}
}

// unwrap returns the children of a wrapper node.
func unwrap(n innertube.Node) ([]innertube.Node, error) {
	switch n.Kind {
	case "adSlotRenderer":
		r, err := decode[innertube.AdSlotRenderer](n)
		if err != nil {
			return nil, err
		}
		if l := r.FulfillmentContent.FulfilledLayout; l != nil && !l.IsZero() {
			return []innertube.Node{*l}, nil
		}
		return nil, nil
	case "channelFeaturedContentRenderer":
		r, err := decode[innertube.FeaturedContentRenderer](n)
		if err != nil {
			return nil, err
		}
		return r.Items, nil
	}

	r, err := decode[innertube.WrapperRenderer](n)
	if err != nil {
		return nil, err
	}
	if child := r.Child(); child != nil && !child.IsZero() {
		return []innertube.Node{*child}, nil
	}
	return nil, nil
}

// convertWrapper handles a wrapper converted on its own, outside a list.
// A single child stands for the wrapper; anything else becomes a section.
func convertWrapper(c *Converter, n innertube.Node) (Container, error) {
	children, err := unwrap(n)
	if err != nil {
		return Container{}, err
	}
	items := c.ConvertAll(children)
	if len(items) == 1 {
		return items[0], nil
	}
	return newContainer(n.Kind, Section{Items: items}), nil
}

func convertAdShell(_ *Converter, n innertube.Node) (Container, error) {
	return newContainer(n.Kind, Section{Items: []Container{}}), nil
}
