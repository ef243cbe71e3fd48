package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookbinder/internal/metadata"
)

const (
	concatListName = "inputs.txt"
	metadataName   = "metadata.txt"
)

func writeConcatList(dir string, inputs []string) (string, error) {
	var b strings.Builder
	b.WriteString("ffconcat version 1.0\n")
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", input, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(abs, "'", `'\''`))
	}
	path := filepath.Join(dir, concatListName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}
	return path, nil
}

func writeMetadata(dir string, block metadata.Block, total time.Duration) (string, error) {
	path := filepath.Join(dir, metadataName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create metadata file: %w", err)
	}
	if err := block.WriteFFMetadata(file, total); err != nil {
		file.Close()
		return "", fmt.Errorf("write metadata file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close metadata file: %w", err)
	}
	return path, nil
}
