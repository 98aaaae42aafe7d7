package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// celexFields is the minimum number of backslash separated fields in a CELEX
// dpw.cd line: id, word, frequency, id, syllabification.
const celexFields = 5

// maxLineSize bounds a single table line.
const maxLineSize = 1024 * 1024

// ReadCELEX reads the Dutch phonological wordforms file (dpw.cd). Each line
// is backslash separated; field 1 holds the word and field 4 its hyphenated
// syllabification, e.g. `12\aardappel\234\1\aard-ap-pel`. Lines without a
// syllabification are skipped.
func ReadCELEX(r io.Reader) Source {
	return scanLines(r, func(line string, lineNum int) (Pair, bool, error) {
		if strings.TrimSpace(line) == "" {
			return Pair{}, false, nil
		}
		fields := strings.Split(line, `\`)
		if len(fields) < celexFields {
			return Pair{}, false, &DataLoadError{Line: lineNum, Err: fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedEntry, celexFields, len(fields))}
		}
		word, syllables := fields[1], fields[4]
		if syllables == "" {
			return Pair{}, false, nil
		}
		if word == "" {
			return Pair{}, false, &DataLoadError{Line: lineNum, Err: ErrMalformedEntry}
		}
		return Pair{Word: strings.ToLower(word), Value: len(strings.Split(syllables, "-")), Line: lineNum}, true, nil
	})
}

// ReadTable reads "word value" lines separated by a tab or spaces. Blank
// lines and lines starting with # are ignored.
func ReadTable(r io.Reader) Source {
	return scanLines(r, func(line string, lineNum int) (Pair, bool, error) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return Pair{}, false, nil
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return Pair{}, false, &DataLoadError{Line: lineNum, Err: fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedEntry, len(fields))}
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return Pair{}, false, &DataLoadError{Line: lineNum, Word: fields[0], Err: fmt.Errorf("%w: %v", ErrMalformedEntry, err)}
		}
		return Pair{Word: fields[0], Value: value, Line: lineNum}, true, nil
	})
}

// ReadRankedList reads one word per line, most frequent first. The rank of a
// word is its position among the non-blank lines, starting at 1.
func ReadRankedList(r io.Reader) Source {
	return func(yield func(Pair, error) bool) {
		rank := 0
		scanLines(r, func(line string, lineNum int) (Pair, bool, error) {
			word := strings.TrimSpace(line)
			if word == "" || strings.HasPrefix(word, "#") {
				return Pair{}, false, nil
			}
			rank++
			return Pair{Word: word, Value: rank, Line: lineNum}, true, nil
		})(yield)
	}
}

// ReadCSVWordList reads a CSV file with a header row and ranks the values of
// column by row order, as the freq77 lists are laid out.
func ReadCSVWordList(r io.Reader, column string) Source {
	return func(yield func(Pair, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1

		header, err := cr.Read()
		if err != nil {
			yield(Pair{}, &DataLoadError{Line: 1, Err: fmt.Errorf("read header: %w", err)})
			return
		}
		col := -1
		for i, name := range header {
			if strings.TrimSpace(name) == column {
				col = i
				break
			}
		}
		if col < 0 {
			yield(Pair{}, &DataLoadError{Line: 1, Err: fmt.Errorf("%w: no %q column", ErrMalformedEntry, column)})
			return
		}

		rank := 0
		for row := 2; ; row++ {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Pair{}, &DataLoadError{Line: row, Err: fmt.Errorf("%w: %v", ErrMalformedEntry, err)})
				return
			}
			if col >= len(record) {
				yield(Pair{}, &DataLoadError{Line: row, Err: fmt.Errorf("%w: missing %q column", ErrMalformedEntry, column)})
				return
			}
			word := strings.TrimSpace(record[col])
			if word == "" {
				continue
			}
			rank++
			if !yield(Pair{Word: word, Value: rank, Line: row}, nil) {
				return
			}
		}
	}
}

// File opens path and reads it with read. The file is closed when the
// iteration ends.
func File(path string, read func(io.Reader) Source) Source {
	return func(yield func(Pair, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(Pair{}, &DataLoadError{Source: path, Err: err})
			return
		}
		defer f.Close()

		for p, err := range read(f) {
			if err != nil {
				var le *DataLoadError
				if errors.As(err, &le) && le.Source == "" {
					le.Source = path
				}
				yield(Pair{}, err)
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

type lineParser func(line string, lineNum int) (Pair, bool, error)

func scanLines(r io.Reader, parse lineParser) Source {
	return func(yield func(Pair, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		lineNum := 0

		for scanner.Scan() {
			lineNum++
			line := strings.TrimRight(scanner.Text(), "\r")
			if lineNum == 1 {
				line = strings.TrimPrefix(line, "\ufeff")
			}
			p, ok, err := parse(line, lineNum)
			if err != nil {
				yield(Pair{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(p, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Pair{}, &DataLoadError{Line: lineNum, Err: err})
		}
	}
}
