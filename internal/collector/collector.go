package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/handiism/bing-wallpaper/internal/bing"
	"github.com/handiism/bing-wallpaper/internal/config"
	"github.com/handiism/bing-wallpaper/internal/http"
	ioutils "github.com/handiism/bing-wallpaper/internal/io"
	"github.com/handiism/bing-wallpaper/internal/model"
	"github.com/handiism/bing-wallpaper/internal/status"
)

// Collector fetches the latest Bing wallpaper and archives it.
type Collector struct {
	settings     *config.Settings
	logger       *slog.Logger
	httpClient   *http.Client
	parser       *bing.Parser
	readme       *status.ReadmeCreator
	imageService *ioutils.ImageService

	baseDir    string
	readmePath string
	outputDir  string

	now func() time.Time
}

// New creates a new Collector.
//
// If settings.BaseDir is empty, the base directory is discovered by walking
// upward from the running executable until one of config.BaseDirMarkers is
// found.
func New(settings *config.Settings, logger *slog.Logger) (*Collector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	baseDir := settings.BaseDir
	if baseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		baseDir = ioutils.FindBaseDir(exe, config.BaseDirMarkers)
	}
	logger.Debug("detected base directory", "path", baseDir)

	outputDir := settings.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(baseDir, outputDir)
	}

	return &Collector{
		settings:     settings,
		logger:       logger,
		httpClient:   http.NewClient(settings.UserAgent),
		parser:       bing.NewParser(settings.ImageOrigin),
		readme:       status.NewReadmeCreator(settings.Market),
		imageService: ioutils.NewImageService(),
		baseDir:      baseDir,
		readmePath:   filepath.Join(baseDir, config.StatusFileName),
		outputDir:    outputDir,
		now:          time.Now,
	}, nil
}

// Run performs one collection cycle.
//
// A failed metadata fetch and an already-collected image both end the run
// early without an error. Only a failure to prepare the output directory or
// to download the image is returned; a failed README write is logged.
func (c *Collector) Run(ctx context.Context) error {
	c.logger.Info("starting collector", "market", c.settings.Market)

	wp, ok := c.fetchMetadata(ctx)
	if !ok {
		c.logger.Warn("no metadata fetched, exiting")
		return nil
	}

	yearDir := filepath.Join(c.outputDir, strconv.Itoa(c.now().Year()))
	if err := ioutils.EnsureDir(yearDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	savePath := filepath.Join(yearDir, wp.Filename)
	exists, err := ioutils.Exists(savePath)
	if err != nil {
		return fmt.Errorf("check %q: %w", savePath, err)
	}
	if exists {
		c.logger.Info("file already exists, skipping download", "path", savePath)
		return nil
	}

	if err := c.downloadImage(ctx, wp.ImageURL, savePath); err != nil {
		return fmt.Errorf("download image: %w", err)
	}

	if c.settings.ThumbnailSize > 0 {
		c.saveThumbnail(ctx, savePath, filepath.Join(yearDir, config.ThumbnailDirName, wp.Filename))
	}

	c.updateReadme(wp)
	return nil
}

func (c *Collector) fetchMetadata(ctx context.Context) (*model.Wallpaper, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.settings.MetadataTimeout)
	defer cancel()

	u, err := bing.ArchiveURL(c.settings.MetadataURL, c.settings.Market)
	if err != nil {
		c.logger.Error("error building metadata request", "error", err)
		return nil, false
	}

	c.logger.Debug("fetching metadata", "url", u)
	body, err := c.httpClient.Get(ctx, u)
	if err != nil {
		c.logger.Error("error fetching metadata", "error", err)
		return nil, false
	}

	wp, err := c.parser.ParseArchive(body)
	if err != nil {
		c.logger.Error("error parsing metadata", "error", err)
		return nil, false
	}

	c.logger.Info("metadata fetched", "filename", wp.Filename)
	return wp, true
}

func (c *Collector) downloadImage(ctx context.Context, url, savePath string) error {
	ctx, cancel := context.WithTimeout(ctx, c.settings.DownloadTimeout)
	defer cancel()

	c.logger.Debug("downloading image", "url", url)
	n, err := c.httpClient.DownloadFile(ctx, url, savePath)
	if err != nil {
		c.logger.Error("failed to download image", "error", err)
		return err
	}

	c.logger.Info("image saved", "path", savePath, "bytes", n)
	return nil
}

// saveThumbnail is best-effort; the full-size image is already saved.
func (c *Collector) saveThumbnail(ctx context.Context, imagePath, thumbPath string) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		c.logger.Warn("failed to read image for thumbnail", "error", err)
		return
	}

	thumb, err := c.imageService.ResizeImage(ctx, data, c.settings.ThumbnailSize, c.settings.ThumbnailSize)
	if err != nil {
		c.logger.Warn("failed to resize thumbnail", "error", err)
		return
	}

	if err := ioutils.EnsureDir(filepath.Dir(thumbPath)); err != nil {
		c.logger.Warn("failed to create thumbnail directory", "error", err)
		return
	}
	if err := os.WriteFile(thumbPath, thumb, 0644); err != nil {
		c.logger.Warn("failed to save thumbnail", "error", err)
		return
	}

	c.logger.Debug("thumbnail saved", "path", thumbPath)
}

func (c *Collector) updateReadme(wp *model.Wallpaper) {
	content := c.readme.CreateReadme(wp)
	if err := ioutils.WriteFileAtomic(c.readmePath, []byte(content)); err != nil {
		c.logger.Error("failed to write README", "path", c.readmePath, "error", err)
		return
	}
	c.logger.Info("README updated", "path", c.readmePath)
}
