// Package status renders the README.md status document describing the
// most recently collected wallpaper.
//
// # Template
//
// The document always has the same shape, filled in from the market and
// the latest model.Wallpaper:
//
//	# 🏞️ Bing Daily Wallpaper
//
//	> 🤖 Auto-collected by GitHub Actions.
//	> Market: {market}
//
//	## 📅 Today ({date})
//
//	![{title}]({imageURL})
//
//	> **{copyright}**
//
//	## 🗄️ Archives
//	- [View Archives](archives/)
//
// The archive link is always ArchiveLink, whatever output directory the
// collector writes to.
//
// # Basic Usage
//
// Render the content and replace the file in one step:
//
//	creator := status.NewReadmeCreator("zh-CN")
//	content := creator.CreateReadme(wp)
//	err := ioutils.WriteFileAtomic(readmePath, []byte(content))
//
// Each call produces the whole file, so a previous day's entry never
// survives an update.
package status
