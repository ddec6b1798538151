package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driving"
	"github.com/giraffe-kg/giraffe-cli/internal/logger"
)

// Ensure BatchService implements the interface.
var _ driving.BatchService = (*BatchService)(nil)

// commentMarker starts a comment line in a disease list file.
const commentMarker = "#"

// BatchService resolves an ordered list of disease names, one query at
// a time.
type BatchService struct {
	resolver driving.ResolverService
}

// NewBatchService creates a batch service.
func NewBatchService(resolver driving.ResolverService) *BatchService {
	return &BatchService{resolver: resolver}
}

// Process resolves each name strictly sequentially and records one item
// per input name, in input order. A per-item failure is recorded as a
// not-found item and never aborts the batch. Repeated names are queried
// again, not deduplicated.
func (s *BatchService) Process(
	ctx context.Context, names []string, opts domain.LookupOptions,
) *domain.BatchReport {
	logger.Section("Batch Run")
	logger.Info("Processing %d disease names", len(names))

	report := domain.NewBatchReport()
	for i, name := range names {
		logger.Debug("[%d/%d] %q", i+1, len(names), name)

		item := domain.BatchItem{Name: name}
		match, err := s.resolver.Resolve(ctx, name, opts)
		switch {
		case err == nil:
			item.Status = domain.StatusFound
			item.Match = match
		case errors.Is(err, domain.ErrNotFound):
			item.Status = domain.StatusNotFound
		default:
			item.Status = domain.StatusNotFound
			item.Error = err.Error()
			logger.Warn("[%d/%d] %q failed: %v", i+1, len(names), name, err)
		}
		report.Items = append(report.Items, item)
	}

	logger.Info("Resolved %d/%d names", report.Found(), len(names))
	return report
}

// ReadNames reads newline-delimited disease names, skipping blank lines
// and lines starting with "#".
func ReadNames(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading disease list: %v", domain.ErrInvalidInput, err)
	}

	return names, nil
}
