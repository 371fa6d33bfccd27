// Package keyio writes generated keys in the forms a benchmark harness loads:
// newline separated decimal text, or fixed 8-byte little-endian records.
package keyio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/constraints"
)

type Format int

const (
	FormatBinary Format = iota
	FormatText
)

var formatNames = map[string]Format{
	"binary": FormatBinary,
	"text":   FormatText,
}

func (f Format) String() string {
	for eachName, eachFormat := range formatNames {
		if eachFormat == f {
			return eachName
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension is the file suffix used for keys written in this format.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return ".bin"
}

func ParseFormat(name string) (Format, error) {
	format, exists := formatNames[name]
	if !exists {
		return 0, fmt.Errorf("unsupported key file format: %q. Supported formats: [binary text]", name)
	}
	return format, nil
}

// Write encodes keys to w. Binary records hold the 64-bit two's complement of
// each key.
func Write[K constraints.Integer](w io.Writer, keys []K, format Format) error {
	bufWriter := bufio.NewWriter(w)
	var writeErr error
	switch format {
	case FormatBinary:
		var record [8]byte
		for _, eachKey := range keys {
			binary.LittleEndian.PutUint64(record[:], uint64(eachKey))
			if _, writeErr = bufWriter.Write(record[:]); writeErr != nil {
				return writeErr
			}
		}
	case FormatText:
		signed := ^K(0) < 0
		line := make([]byte, 0, 24)
		for _, eachKey := range keys {
			if signed {
				line = strconv.AppendInt(line[:0], int64(eachKey), 10)
			} else {
				line = strconv.AppendUint(line[:0], uint64(eachKey), 10)
			}
			line = append(line, '\n')
			if _, writeErr = bufWriter.Write(line); writeErr != nil {
				return writeErr
			}
		}
	default:
		return fmt.Errorf("unsupported key file format: %s", format)
	}
	return bufWriter.Flush()
}

// WriteFile writes keys to path, replacing any existing file.
func WriteFile[K constraints.Integer](path string, keys []K, format Format) (err error) {
	keyFile, createErr := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if createErr != nil {
		return createErr
	}
	defer func() {
		err = errors.Join(err, keyFile.Close())
	}()
	return Write(keyFile, keys, format)
}

// ReadBinary decodes records written with FormatBinary.
func ReadBinary[K constraints.Integer](r io.Reader) ([]K, error) {
	bufReader := bufio.NewReader(r)
	keys := []K{}
	var record [8]byte
	for {
		_, readErr := io.ReadFull(bufReader, record[:])
		if errors.Is(readErr, io.EOF) {
			return keys, nil
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading key %d: %w", len(keys), readErr)
		}
		keys = append(keys, K(binary.LittleEndian.Uint64(record[:])))
	}
}
