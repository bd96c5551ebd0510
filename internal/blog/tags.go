package blog

import "sort"

// GroupByTag maps each tag to the post pages carrying it, preserving the
// selector-supplied post order within every group. A post with N tags appears
// in N groups. Tags with zero posts never appear.
func GroupByTag(posts []*PostPage) map[string][]*PostPage {
	groups := make(map[string][]*PostPage)
	for _, post := range posts {
		for _, tag := range post.Document().Tags {
			groups[tag] = append(groups[tag], post)
		}
	}
	return groups
}

// SortedTags returns the group keys sorted by tag name, so per-tag runs
// concatenate deterministically regardless of map iteration or any parallel
// per-tag computation.
func SortedTags(groups map[string][]*PostPage) []string {
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagRunSpec builds the pagination spec for one tag's run.
func TagRunSpec(tag string, pageSize int, template, layout Renderable) RunSpec {
	urltag := URLSafeTag(tag)
	return RunSpec{
		PageSize:     pageSize,
		IndexPath:    "tag/" + urltag + "/index.html",
		NumberedPath: "tag/" + urltag + "/page/%d/index.html",
		FeedBase:     "tag/" + urltag,
		Template:     template,
		Layout:       layout,
	}
}
