package status

import (
	"strings"
	"testing"

	"github.com/handiism/bing-wallpaper/internal/model"
)

func createTestWallpaper(t *testing.T) *model.Wallpaper {
	t.Helper()
	wp, err := model.NewWallpaper("https://www.bing.com", "/th?id=ABC123", "Mountain View (© Example Corp)", "20240115")
	if err != nil {
		t.Fatal(err)
	}
	return wp
}

func TestReadmeCreator_CreateReadme(t *testing.T) {
	content := NewReadmeCreator("en-US").CreateReadme(createTestWallpaper(t))

	want := "# 🏞️ Bing Daily Wallpaper\n" +
		"\n" +
		"> 🤖 Auto-collected by GitHub Actions.\n" +
		"> Market: en-US\n" +
		"\n" +
		"## 📅 Today (2024-01-15)\n" +
		"\n" +
		"![Mountain View (© Example Corp)](https://www.bing.com/th?id=ABC123)\n" +
		"\n" +
		"> **Mountain View (© Example Corp)**\n" +
		"\n" +
		"## 🗄️ Archives\n" +
		"- [View Archives](archives/)\n"

	if content != want {
		t.Errorf("CreateReadme() =\n%s\nwant\n%s", content, want)
	}
}

func TestReadmeCreator_Market(t *testing.T) {
	content := NewReadmeCreator("zh-CN").CreateReadme(createTestWallpaper(t))
	if !strings.Contains(content, "> Market: zh-CN\n") {
		t.Error("README should contain the market code")
	}
	if !strings.HasPrefix(content, "# ") {
		t.Error("README should start with a heading")
	}
}

func TestReadmeCreator_WholeDocumentPerCall(t *testing.T) {
	creator := NewReadmeCreator("zh-CN")
	first := creator.CreateReadme(createTestWallpaper(t))

	next, err := model.NewWallpaper("https://www.bing.com", "/th?id=DEF456", "Desert Dunes (© Other)", "20240116")
	if err != nil {
		t.Fatal(err)
	}
	second := creator.CreateReadme(next)

	if strings.Contains(second, "2024-01-15") || strings.Contains(second, "Mountain View") {
		t.Errorf("second document mentions the previous wallpaper:\n%s", second)
	}
	for _, doc := range []string{first, second} {
		if !strings.HasPrefix(doc, "# 🏞️ Bing Daily Wallpaper\n") {
			t.Errorf("document does not start with the header:\n%s", doc)
		}
		if !strings.HasSuffix(doc, "- [View Archives]("+ArchiveLink+")\n") {
			t.Errorf("document does not end with the archive link:\n%s", doc)
		}
	}
}
