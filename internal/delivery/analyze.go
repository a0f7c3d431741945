package delivery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/tanishpoddar/GreenVision/internal/cache"
	"github.com/tanishpoddar/GreenVision/internal/geotiff"
	"github.com/tanishpoddar/GreenVision/internal/ndvi"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/raster"
	"github.com/tanishpoddar/GreenVision/internal/series"
	"github.com/tanishpoddar/GreenVision/internal/utils"
	"github.com/tanishpoddar/GreenVision/output"
)

// Session is the state of one interactive run: the ordered statistics
// series plus the artifacts rendered so far. Files are processed one at a
// time, in the order they are given.
type Session struct {
	Series     *series.TimeSeries
	Footprints []output.Footprint
	NDVIImages []string

	statsCache *cache.FileCache[analysis]
}

// analysis is the cacheable outcome of one file.
type analysis struct {
	Stats         ndvi.Stats `json:"stats"`
	Georeferenced bool       `json:"georeferenced"`
	Bounds        [4]float64 `json:"bounds"`
}

// AnalyzeOptions selects how NDVI is obtained from a file. With both band
// indices set the index is computed from those bands, otherwise band 1 is
// read as a pre-computed NDVI product.
type AnalyzeOptions struct {
	RedBand int
	NIRBand int
}

func NewSession() *Session {
	return &Session{
		Series:     series.New(),
		statsCache: cache.NewFileCache[analysis]("analysis"),
	}
}

// AnalyzeFiles runs the full pipeline over every path: decode, NDVI,
// statistics, renders. Files are processed one at a time, synchronously.
// A file that cannot be processed is skipped with a warning and the
// remaining files still run. Returns how many files made it into the
// series.
func (s *Session) AnalyzeFiles(paths []string, opts AnalyzeOptions) (int, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("no files to analyze")
	}

	var progressBar *progressbar.ProgressBar
	if len(paths) > 1 {
		progressBar = progressbar.Default(int64(len(paths)), "Analyzing images")
	}

	analyzed := 0
	for _, path := range paths {
		if err := s.analyzeFile(path, opts); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  path,
				"error": err,
			}).Warn("failed to analyze image, skipping it")
		} else {
			analyzed++
		}
		if progressBar != nil {
			progressBar.Add(1)
		}
	}
	if progressBar != nil {
		progressBar.Finish()
	}

	return analyzed, nil
}

func (s *Session) analyzeFile(path string, opts AnalyzeOptions) error {
	label := filepath.Base(path)
	ndviPath := artifactPath("ndvi", label, ".png")

	key, err := cache.FileContentKey(path)
	if err != nil {
		return err
	}
	key = s.statsCache.GenerateKey(key, opts.RedBand, opts.NIRBand)

	if cached, ok := s.statsCache.Get(key); ok {
		if _, err := os.Stat(ndviPath); err == nil {
			logrus.WithField("file", label).Info("statistics served from cache")
			s.appendEntry(label, path, ndviPath, cached)
			return nil
		}
	}

	r, err := geotiff.Load(path)
	if err != nil {
		return err
	}

	grid, err := s.ndviGrid(r, opts)
	if err != nil {
		return err
	}

	result := analysis{Stats: ndvi.Summarize(grid)}
	if r.Georeferenced {
		xMin, yMin, xMax, yMax, err := r.Bounds()
		if err == nil {
			result.Georeferenced = true
			result.Bounds = [4]float64{xMin, yMin, xMax, yMax}
		}
	}

	if err := os.MkdirAll(filepath.Dir(ndviPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %w", err)
	}
	if err := output.CreateNDVIImageWithLegend(grid, ndviPath); err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  label,
			"error": err,
		}).Warn("failed to render NDVI map")
		ndviPath = ""
	}

	compositePath := artifactPath("composite", label, ".jpeg")
	if err := os.MkdirAll(filepath.Dir(compositePath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %w", err)
	}
	if err := output.CreateCompositeImage(r, compositePath); err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  label,
			"error": err,
		}).Warn("failed to render composite")
	}

	if err := s.statsCache.Set(key, result); err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  label,
			"error": err,
		}).Warn("failed to cache statistics")
	}

	s.appendEntry(label, path, ndviPath, result)
	return nil
}

// ndviGrid applies the band conventions: explicit red and NIR indices win,
// otherwise band 1 carries the index.
func (s *Session) ndviGrid(r *raster.Raster, opts AnalyzeOptions) (*raster.Grid, error) {
	if opts.RedBand > 0 && opts.NIRBand > 0 {
		red, err := r.Band(opts.RedBand)
		if err != nil {
			return nil, err
		}
		nir, err := r.Band(opts.NIRBand)
		if err != nil {
			return nil, err
		}
		return ndvi.Compute(red, nir)
	}

	band, err := r.Band(1)
	if err != nil {
		return nil, err
	}
	return ndvi.FromBand(band)
}

func (s *Session) appendEntry(label, path, ndviPath string, result analysis) {
	s.Series.Append(series.Entry{
		Label: label,
		Path:  path,
		Stats: result.Stats,
	})
	if ndviPath != "" {
		s.NDVIImages = append(s.NDVIImages, ndviPath)
	}
	if result.Georeferenced {
		s.Footprints = append(s.Footprints, output.Footprint{
			Name:     label,
			XMin:     result.Bounds[0],
			YMin:     result.Bounds[1],
			XMax:     result.Bounds[2],
			YMax:     result.Bounds[3],
			MeanNDVI: utils.Round3Ptr(result.Stats.Mean),
		})
	}
}

func artifactPath(subDir, label, extension string) string {
	stem := strings.TrimSuffix(label, filepath.Ext(label))
	return filepath.Join(properties.ResultPath(), subDir, stem+extension)
}
