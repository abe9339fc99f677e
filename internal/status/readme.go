package status

import (
	"fmt"
	"strings"

	"github.com/handiism/bing-wallpaper/internal/model"
)

// ArchiveLink is the relative link to the archive directory shown in the README.
const ArchiveLink = "archives/"

// ReadmeCreator generates the status document for the latest wallpaper.
//
// The output is the complete file content; the document is always fully
// replaced, never appended to, so it only ever describes one wallpaper.
//
// Example:
//
//	creator := NewReadmeCreator("zh-CN")
//	content := creator.CreateReadme(wp)
//
//	// Result:
//	// # 🏞️ Bing Daily Wallpaper
//	//
//	// > 🤖 Auto-collected by GitHub Actions.
//	// > Market: zh-CN
//	// ...
type ReadmeCreator struct {
	market      string
	archiveLink string
}

// NewReadmeCreator creates a new ReadmeCreator for the given market code.
func NewReadmeCreator(market string) *ReadmeCreator {
	return &ReadmeCreator{
		market:      market,
		archiveLink: ArchiveLink,
	}
}

// CreateReadme generates the README content for a wallpaper.
func (r *ReadmeCreator) CreateReadme(wp *model.Wallpaper) string {
	var sb strings.Builder

	sb.WriteString("# 🏞️ Bing Daily Wallpaper\n")
	sb.WriteString("\n")
	sb.WriteString("> 🤖 Auto-collected by GitHub Actions.\n")
	sb.WriteString(fmt.Sprintf("> Market: %s\n", r.market))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("## 📅 Today (%s)\n", wp.Date))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("![%s](%s)\n", wp.Title, wp.ImageURL))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("> **%s**\n", wp.Copyright))
	sb.WriteString("\n")
	sb.WriteString("## 🗄️ Archives\n")
	sb.WriteString(fmt.Sprintf("- [View Archives](%s)\n", r.archiveLink))

	return sb.String()
}
