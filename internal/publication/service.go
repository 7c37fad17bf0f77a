package publication

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/username/school-bells/internal/blobstore"
	"github.com/username/school-bells/internal/docstore"
	"go.uber.org/zap"
)

// MetadataKey is the document holding publication metadata, keyed by publication
const MetadataKey = "publications"

var (
	// ErrUnknownPublication is returned for publications missing from the metadata document
	ErrUnknownPublication = errors.New("unknown publication")
	// ErrNotPDF is returned by Upload when the data is not a PDF file
	ErrNotPDF = errors.New("issue is not a PDF")
)

var pdfMagic = []byte("%PDF-")

// Metadata describes a publication
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service lists and stores publication issues
type Service struct {
	blobs  blobstore.Store
	docs   docstore.Store
	logger *zap.Logger
}

// NewService creates a new publication service
func NewService(blobs blobstore.Store, docs docstore.Store, logger *zap.Logger) *Service {
	return &Service{
		blobs:  blobs,
		docs:   docs,
		logger: logger,
	}
}

// Metadata returns the metadata of every known publication
func (s *Service) Metadata(ctx context.Context) (map[string]Metadata, error) {
	doc, err := s.docs.Get(ctx, MetadataKey)
	if errors.Is(err, docstore.ErrNotFound) {
		return map[string]Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load publication metadata: %w", err)
	}

	out := make(map[string]Metadata, len(doc))
	for id, raw := range doc {
		var meta Metadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse metadata of %s: %w", id, err)
		}
		out[id] = meta
	}
	return out, nil
}

// Describe returns one publication's metadata
func (s *Service) Describe(ctx context.Context, publication string) (Metadata, error) {
	all, err := s.Metadata(ctx)
	if err != nil {
		return Metadata{}, err
	}
	meta, ok := all[publication]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %s", ErrUnknownPublication, publication)
	}
	return meta, nil
}

// Issues returns the issues of a publication, newest first
func (s *Service) Issues(ctx context.Context, publication string) ([]Issue, error) {
	names, err := s.blobs.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	prefix := publication + "/"
	var issues []Issue
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		issue, ok := ParseIssue(name)
		if !ok {
			s.logger.Debug("Skipping non-issue blob", zap.String("name", name))
			continue
		}
		issues = append(issues, issue)
	}

	slices.SortFunc(issues, func(a, b Issue) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.Name, a.Name)
	})
	return issues, nil
}

// Archive returns a publication's issues grouped by year and month
func (s *Service) Archive(ctx context.Context, publication string) ([]YearIssues, error) {
	issues, err := s.Issues(ctx, publication)
	if err != nil {
		return nil, err
	}
	return Archive(issues), nil
}

// Latest returns the newest issue of a publication
func (s *Service) Latest(ctx context.Context, publication string) (Issue, bool, error) {
	issues, err := s.Issues(ctx, publication)
	if err != nil || len(issues) == 0 {
		return Issue{}, false, err
	}
	return issues[0], true, nil
}

// Fetch returns an issue's PDF
func (s *Service) Fetch(ctx context.Context, issue Issue) ([]byte, error) {
	return s.blobs.Fetch(ctx, issue.Name)
}

// Cover returns an issue's cover image, if one was uploaded
func (s *Service) Cover(ctx context.Context, issue Issue) ([]byte, bool, error) {
	data, err := s.blobs.Fetch(ctx, issue.CoverName())
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Upload stores a new issue of a known publication
func (s *Service) Upload(ctx context.Context, publication string, date time.Time, suffix string, data []byte) (Issue, error) {
	if _, err := s.Describe(ctx, publication); err != nil {
		return Issue{}, err
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return Issue{}, ErrNotPDF
	}

	name := IssueName(publication, date, suffix)
	issue, ok := ParseIssue(name)
	if !ok {
		return Issue{}, fmt.Errorf("invalid issue name %q", name)
	}

	if err := s.blobs.Store(ctx, name, data); err != nil {
		return Issue{}, fmt.Errorf("failed to store issue: %w", err)
	}

	s.logger.Info("Issue uploaded",
		zap.String("publication", publication),
		zap.String("name", name),
		zap.Int("bytes", len(data)))
	return issue, nil
}

// UploadCover stores the cover image of an issue
func (s *Service) UploadCover(ctx context.Context, issue Issue, data []byte) error {
	if err := s.blobs.Store(ctx, issue.CoverName(), data); err != nil {
		return fmt.Errorf("failed to store cover: %w", err)
	}
	return nil
}
