package browser

import "time"

// Extract flattens a bookmark tree depth-first in pre-order. Leaves
// missing a source timestamp are stamped with the extraction time.
func Extract(tree []Node) []FlatBookmark {
	return extractAt(tree, time.Now())
}

func extractAt(tree []Node, now time.Time) []FlatBookmark {
	flat := make([]FlatBookmark, 0)
	walk(tree, "", now, &flat)
	return flat
}

func walk(nodes []Node, folderName string, now time.Time, out *[]FlatBookmark) {
	for _, node := range nodes {
		switch {
		case node.URL != "":
			*out = append(*out, FlatBookmark{
				Title:      node.Title,
				URL:        node.URL,
				DateAdded:  nodeTime(node, now),
				FolderName: folderName,
			})
		case len(node.Children) > 0:
			// A folder: its own title becomes the folder name for
			// everything below, one level only. An empty title is
			// still a valid folder name.
			walk(node.Children, node.Title, now, out)
		default:
			// Empty folder, skipped and never reified.
		}
	}
}

func nodeTime(node Node, now time.Time) time.Time {
	if node.DateAdded <= 0 {
		return now
	}
	return time.UnixMilli(node.DateAdded)
}
