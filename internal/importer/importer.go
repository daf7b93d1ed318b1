// Package importer turns tabular question files (CSV or Excel) into
// question records and feeds them to the store's bulk insert.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/quizbank/pkg/models"
)

// QuestionAdder is the store-side contract: one bulk insert that counts
// accepted and rejected records without aborting the batch.
type QuestionAdder interface {
	AddQuestions(questions []models.Question) (models.ImportSummary, error)
}

// Config defines one import run.
type Config struct {
	FilePath   string // Path to the CSV or Excel file
	Category   string // Category label assigned to every imported question
	SheetName  string // Name of the sheet to import (Excel only)
	SkipHeader bool   // Skip the first row
}

// DefaultConfig returns the default import configuration for a file.
func DefaultConfig(path string) Config {
	return Config{
		FilePath:   path,
		Category:   "general",
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// Result holds the outcome of an import operation.
type Result struct {
	Processed int
	Added     int
	Errors    int
	RowErrors []string
}

// ImportFile imports questions from a CSV or Excel file, dispatching on
// the file extension.
func ImportFile(store QuestionAdder, config Config) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		f, err := os.Open(config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %v", err)
		}
		defer f.Close()
		return ImportCSV(store, f, config)
	}
	return importFromExcel(store, config)
}

// ImportCSV imports questions from CSV data. Each row is expected as
// question, option A, option B, option C, option D, correct letter and an
// optional explanation column.
func ImportCSV(store QuestionAdder, r io.Reader, config Config) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rows = append(rows, row)
	}

	return importRows(store, rows, config)
}

// importFromExcel imports questions from an Excel sheet.
func importFromExcel(store QuestionAdder, config Config) (*Result, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	return importRows(store, rows, config)
}

// importRows shapes raw rows into candidate questions and hands the batch
// to the store. Rejected records are counted, never fatal.
func importRows(store QuestionAdder, rows [][]string, config Config) (*Result, error) {
	result := &Result{}
	candidates := make([]models.Question, 0, len(rows))

	for i, row := range rows {
		if i == 0 && config.SkipHeader {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		result.Processed++
		question := rowToQuestion(row, config.Category)
		if err := question.Validate(); err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
		candidates = append(candidates, question)
	}

	summary, err := store.AddQuestions(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to store questions: %v", err)
	}
	result.Added = summary.Added
	result.Errors = summary.Errors
	return result, nil
}

// rowToQuestion maps one row's cells onto a candidate question. Missing
// trailing cells stay empty and fail validation in the store.
func rowToQuestion(row []string, category string) models.Question {
	question := models.Question{Category: category}
	question.Text = cell(row, 0)
	question.OptionA = cell(row, 1)
	question.OptionB = cell(row, 2)
	question.OptionC = cell(row, 3)
	question.OptionD = cell(row, 4)
	question.CorrectOption = strings.ToUpper(cell(row, 5))
	question.Explanation = cell(row, 6)
	if question.CorrectOption == "" {
		question.CorrectOption = "A"
	}
	return question
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
