// Common package contains the FASTA record reader shared by every tool.
// Tools never open FASTA files themselves; they go through StreamFasta.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// RecordHandler receives one FASTA record at a time.
type RecordHandler func(id string, seq string) error

// StreamFasta opens file, transparently decompressing it when it starts with
// the gzip magic bytes, and calls handler once per record in file order.
func StreamFasta(file string, handler RecordHandler) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		f.Seek(0, io.SeekStart)
		gr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		f.Seek(0, io.SeekStart)
	}

	return ReadFasta(reader, handler)
}

// ReadFasta scans FASTA text from r. The record id is the header text after
// '>' up to the first whitespace; sequence lines are concatenated with their
// case preserved. Lines appearing before the first header are ignored and a
// header with no sequence lines yields an empty sequence.
func ReadFasta(r io.Reader, handler RecordHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)		// Unwrapped genomes have very long lines

	var currentID string
	var buffer []byte
	inRecord := false

	flush := func() error {
		if !inRecord {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), isSpace)
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = headerID(line)
			buffer = buffer[:0]								// reset buffer
			inRecord = true
		} else if inRecord {
			buffer = append(buffer, line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}

// headerID returns the identifier portion of a header line.
func headerID(line string) string {
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
