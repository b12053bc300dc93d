package placeholders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/capitolhq/congressctl/internal/lib"
)

func minusModifier(input time.Time, args []string) (time.Time, error) {
	if len(args) != 1 {
		return time.Time{}, fmt.Errorf("minus modifier expects exactly one argument, got %d. %w", len(args), lib.BadUserInputError)
	}
	window, err := parseWindow(args[0])
	if err != nil {
		return time.Time{}, err
	}
	return input.Add(-window), nil
}

func plusModifier(input time.Time, args []string) (time.Time, error) {
	if len(args) != 1 {
		return time.Time{}, fmt.Errorf("plus modifier expects exactly one argument, got %d. %w", len(args), lib.BadUserInputError)
	}
	window, err := parseWindow(args[0])
	if err != nil {
		return time.Time{}, err
	}
	return input.Add(window), nil
}

func formatModifier(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("format modifier expects exactly one argument, got %d. %w", len(args), lib.BadUserInputError)
	}
	return args[0], nil
}

// parseWindow parses durations with the day and year units the standard
// library refuses: "30d" and "20y" (a year counts as 365 days, matching the
// upstream lookback convention). Everything else goes to time.ParseDuration.
func parseWindow(raw string) (time.Duration, error) {
	switch {
	case strings.HasSuffix(raw, "y"):
		years, err := strconv.Atoi(strings.TrimSuffix(raw, "y"))
		if err != nil {
			return 0, fmt.Errorf("parsing year window %q: %w", raw, lib.BadUserInputError)
		}
		return time.Duration(years) * 365 * 24 * time.Hour, nil
	case strings.HasSuffix(raw, "d"):
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil {
			return 0, fmt.Errorf("parsing day window %q: %w", raw, lib.BadUserInputError)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	default:
		window, err := time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("parsing window %q: %w", raw, lib.BadUserInputError)
		}
		return window, nil
	}
}
