package polar

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"strings"
)

// LoadMask reads a frozen-bit mask from a text file of 0/1 digits. Digits
// may be packed into runs or separated by spaces, tabs or commas; blank
// lines and lines starting with '#' are ignored.
func LoadMask(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mask := make([]uint8, 0, 1024)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, r := range line {
			switch r {
			case '0':
				mask = append(mask, 0)
			case '1':
				mask = append(mask, 1)
			case ' ', '\t', ',':
			default:
				return nil, errors.New("invalid character in mask file")
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return mask, nil
}

// LoadMaskBinary reads a mask stored as little-endian int64 entries.
func LoadMaskBinary(path string) ([]uint8, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b)%8 != 0 {
		return nil, errors.New("mask file size invalid")
	}
	cnt := len(b) / 8
	vals64 := make([]int64, cnt)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &vals64); err != nil {
		return nil, err
	}
	mask := make([]uint8, cnt)
	for i, v := range vals64 {
		if v != 0 && v != 1 {
			return nil, ErrMaskValue
		}
		mask[i] = uint8(v)
	}
	return mask, nil
}

// SaveMaskBinary writes the mask to a file as little-endian int64 values.
func SaveMaskBinary(path string, mask []uint8) error {
	vals64 := make([]int64, len(mask))
	for i, v := range mask {
		vals64[i] = int64(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, vals64); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
