package reports

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ExportFile is a rendered export ready to be served as a download.
type ExportFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

type Service interface {
	Export(ctx context.Context, collection, format string) (*ExportFile, error)
}

type service struct {
	exporter ReportExporter
	sources  map[string]Source
}

func NewService(exporter ReportExporter, sources map[string]Source) Service {
	return &service{exporter: exporter, sources: sources}
}

func (s *service) Export(ctx context.Context, collection, format string) (*ExportFile, error) {
	source, ok := s.sources[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	table, err := source(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", collection, err)
	}
	data, filename, contentType, err := s.exporter.Export(collection, format, table)
	if err != nil {
		return nil, fmt.Errorf("exporting %s as %s: %w", collection, format, err)
	}
	return &ExportFile{Data: data, Filename: filename, ContentType: contentType}, nil
}
