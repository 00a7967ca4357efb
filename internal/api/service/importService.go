package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/models"
	"cinerank/internal/api/repository"

	"gorm.io/gorm"
)

// DefaultCategoryDescription is attached to categories created on the fly
// during an import.
const DefaultCategoryDescription = "Category created automatically"

type ImportService interface {
	// ImportCSV reads the upload stream to the end: the first line is a
	// header and is discarded unvalidated; every following row either
	// creates one new item or is skipped and counted. A bad row never
	// aborts the batch.
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportSummary, error)
}

type importService struct {
	itemRepo repository.ItemRepository
	catRepo  repository.CategoryRepository
}

func NewImportService(itemRepo repository.ItemRepository, catRepo repository.CategoryRepository) ImportService {
	return &importService{
		itemRepo: itemRepo,
		catRepo:  catRepo,
	}
}

// Row layout: title, year, synopsis, category, poster_url, type, director, cast.
// Director and cast may be missing on short rows and default to empty.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be short

	summary := &dto.ImportSummary{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if line == 1 {
				return nil, fmt.Errorf("read csv header: %w", err)
			}
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if line == 1 {
			continue // header, discarded unconditionally
		}
		if err := s.importRow(ctx, row); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

func (s *importService) importRow(ctx context.Context, row []string) error {
	if len(row) < 6 {
		return fmt.Errorf("expected at least 6 fields, got %d", len(row))
	}

	title := strings.TrimSpace(row[0])
	if title == "" {
		return errors.New("empty title")
	}

	// The category is resolved before the year is parsed, so a bad-year row
	// still leaves its category behind. That matches the original importer's
	// per-row order.
	category, err := s.getOrCreateCategory(ctx, strings.TrimSpace(row[3]))
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return fmt.Errorf("bad year %q", row[1])
	}

	itemType, err := models.ParseItemType(row[5])
	if err != nil {
		return fmt.Errorf("bad type %q", row[5])
	}

	item := models.Item{
		Title:    title,
		Year:     year,
		Synopsis: strings.TrimSpace(row[2]),
		Type:     itemType,
	}
	if category != nil {
		item.CategoryID = &category.ID
	}
	if poster := strings.TrimSpace(row[4]); poster != "" {
		item.PosterURL = &poster
	}
	if len(row) > 6 {
		item.Director = strings.TrimSpace(row[6])
	}
	if len(row) > 7 {
		item.Cast = strings.TrimSpace(row[7])
	}

	// the upload path always creates; only the batch loader upserts by title
	return s.itemRepo.Create(ctx, &item)
}

func (s *importService) getOrCreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, nil
	}
	category, err := s.catRepo.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	desc := DefaultCategoryDescription
	created := &models.Category{Name: name, Description: &desc}
	if err := s.catRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
