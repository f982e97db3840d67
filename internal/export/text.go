package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Document is the JSON form of one generated chunk.
type Document struct {
	Seed      int64   `json:"seed"`
	Size      int     `json:"size"`
	MaxTile   int32   `json:"max_tile"`
	Algorithm string  `json:"algorithm"`
	Tiles     []int32 `json:"tiles"`
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	if doc.Size <= 0 || len(doc.Tiles) != doc.Size*doc.Size {
		return fmt.Errorf("write json: %d tiles for size %d: %w", len(doc.Tiles), doc.Size, ErrShapeMismatch)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteText prints the grid one row per line with space-separated ids.
func WriteText(w io.Writer, flat []int32, size int) error {
	if size <= 0 || len(flat) != size*size {
		return fmt.Errorf("write text: %d tiles for size %d: %w", len(flat), size, ErrShapeMismatch)
	}
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, size*3)
	for row := 0; row < size; row++ {
		line = line[:0]
		for col := 0; col < size; col++ {
			if col > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(flat[row*size+col]), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}
