package hsa

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FindStatements returns the files matching the glob pattern, in lexical
// order. The pattern is a directory followed by a file name pattern, like
// "reports/hsa-*.html".
func FindStatements(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid statement pattern %q: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("could not stat %q: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// LoadStatements decodes every statement matching pattern into a new Ledger.
//
// It fails on the first statement that cannot be decoded, and when nothing
// matches the pattern.
func LoadStatements(pattern string) (*Ledger, error) {
	files, err := FindStatements(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no statement matches %q", pattern)
	}
	log.Printf("glob: %q, files: %d", pattern, len(files))

	ledger := NewLedger()
	for _, file := range files {
		s, err := loadStatementFile(file)
		if err != nil {
			return nil, err
		}
		log.Printf("%s: dates %s (%d days), transactions: %d", s.Name, s.Range, s.Range.Days(), len(s.Transactions))
		for _, tx := range s.Stray() {
			log.Printf("warning: %s: transaction outside of the statement dates: %v", s.Name, tx)
		}
		ledger.Append(s)
	}
	for _, issue := range ledger.Coverage() {
		log.Printf("warning: %s", issue)
	}
	log.Printf("total: dates %s, transactions: %d", ledger.Range(), ledger.Len())
	return ledger, nil
}

// loadStatementFile opens and decodes a single statement file.
func loadStatementFile(path string) (*Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open statement %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStatement(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode statement %q: %w", path, err)
	}
	s.Name = filepath.Base(path)
	return s, nil
}
