package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Seed content written when the watchlist file does not exist yet.
const watchlistSeed = "sh.600000 # SPD Bank\n" +
	"sz.000002 # Vanke\n" +
	"sh.601398 # ICBC\n"

// EnsureWatchlist creates the watchlist file with example entries when it
// does not exist.
func EnsureWatchlist(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat watchlist: %w", err)
	}
	if err := os.WriteFile(path, []byte(watchlistSeed), 0o644); err != nil {
		return fmt.Errorf("seed watchlist: %w", err)
	}
	return nil
}

// ReadWatchlist parses the watchlist file: one stock code per line, with an
// optional trailing comment introduced by '#'. Blank lines and comment-only
// lines are skipped. Codes are returned raw; normalization happens later.
func ReadWatchlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open watchlist: %w", err)
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, _, _ := strings.Cut(line, "#")
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}
	return codes, nil
}
