// Package export renders a store snapshot into the supported download
// formats: JSON (the snapshot itself), a folder-grouped HTML anchor
// list, and CSV.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
)

// JSON renders the snapshot as indented JSON.
func JSON(snapshot domain.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// HTML renders bookmarks grouped by folder as a plain anchor list, one
// heading per folder in collection order.
func HTML(snapshot domain.Snapshot) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <title>Bookmarks</title>\n    <meta charset=\"utf-8\">\n")
	b.WriteString("</head>\n<body>\n    <h1>Bookmarks</h1>\n")

	grouped := make(map[string][]domain.Bookmark)
	order := make([]string, 0)
	for _, bm := range snapshot.Bookmarks {
		folder := bm.Folder
		if folder == "" {
			folder = domain.DefaultFolderID
		}
		if _, seen := grouped[folder]; !seen {
			order = append(order, folder)
		}
		grouped[folder] = append(grouped[folder], bm)
	}

	for _, folderID := range order {
		fmt.Fprintf(&b, "    <h2>%s</h2>\n    <ul>\n", html.EscapeString(folderName(snapshot.Folders, folderID)))
		for _, bm := range grouped[folderID] {
			fmt.Fprintf(&b, "        <li><a href=\"%s\">%s</a></li>\n",
				html.EscapeString(bm.URL), html.EscapeString(bm.Title))
		}
		b.WriteString("    </ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// CSV renders bookmarks as comma-separated rows in a fixed column
// order, every value double-quote escaped.
func CSV(snapshot domain.Snapshot) string {
	var b strings.Builder
	b.WriteString("Title,URL,Description,Folder,Date Added\n")

	for _, bm := range snapshot.Bookmarks {
		row := []string{
			bm.Title,
			bm.URL,
			bm.Description,
			folderName(snapshot.Folders, bm.Folder),
			bm.DateAdded.Format(time.RFC3339),
		}
		for i, v := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func folderName(folders []domain.Folder, id string) string {
	for _, f := range folders {
		if f.ID == id {
			return f.Name
		}
	}
	return "Default"
}
