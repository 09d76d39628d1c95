//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Fetches the UCD property files needed by the unictype generator.
func main() {
	files := []string{"PropList.txt", "DerivedCoreProperties.txt"}
	for _, file := range files {
		url := "https://www.unicode.org/Public/11.0.0/ucd/" + file
		if err := download(url, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %s: %v\n", file, err)
			os.Exit(1)
		}
	}
}

func download(url, target string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write %v: %w", target, err)
	}
	return nil
}
