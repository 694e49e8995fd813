package transcription

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Segment is one timed cue of a transcript.
type Segment struct {
	Number int
	Start  time.Duration
	End    time.Duration
	Text   string
}

var cueTag = regexp.MustCompile(`<[^>]*>`)

// ParseVTT parses WebVTT content into transcript segments. Header metadata,
// cue identifiers and cue settings are skipped; inline timing and styling tags
// are stripped from the cue text.
func ParseVTT(content string) ([]Segment, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	if content != "WEBVTT" && !strings.HasPrefix(content, "WEBVTT\n") && !strings.HasPrefix(content, "WEBVTT ") {
		return nil, fmt.Errorf("invalid VTT format: missing WEBVTT header")
	}

	segments := []Segment{}
	blocks := strings.Split(content, "\n\n")
	// Last caption line kept. Auto-generated tracks roll each line through
	// two or three overlapping cues.
	prev := ""

	// The first block is the header and any metadata lines that follow it.
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.Trim(block, "\n"), "\n")

		timing := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing == -1 {
			// NOTE, STYLE and REGION blocks
			continue
		}

		timestamps := strings.SplitN(lines[timing], "-->", 2)
		endFields := strings.Fields(timestamps[1])
		if len(endFields) == 0 {
			return nil, fmt.Errorf("invalid cue timing: %q", lines[timing])
		}

		start, err := parseVTTTimestamp(strings.TrimSpace(timestamps[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid start timestamp: %w", err)
		}

		end, err := parseVTTTimestamp(endFields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid end timestamp: %w", err)
		}

		text := cleanCueText(lines[timing+1:], &prev)
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Number: len(segments) + 1,
			Start:  start,
			End:    end,
			Text:   text,
		})
	}

	return segments, nil
}

// cleanCueText strips tags from a cue's lines and drops any line that
// exactly repeats the previous kept one.
func cleanCueText(lines []string, prev *string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = html.UnescapeString(cueTag.ReplaceAllString(line, ""))
		line = strings.TrimSpace(line)
		if line == "" || line == *prev {
			continue
		}
		parts = append(parts, line)
		*prev = line
	}
	return strings.Join(parts, " ")
}

// parseVTTTimestamp accepts HH:MM:SS.mmm and the short MM:SS.mmm form.
func parseVTTTimestamp(timestamp string) (time.Duration, error) {
	if !strings.Contains(timestamp, ".") {
		return 0, fmt.Errorf("invalid timestamp format: missing milliseconds")
	}

	parts := strings.Split(timestamp, ":")
	var hours int
	switch {
	case len(parts) == 3 && len(parts[0]) == 2:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid hours: %w", err)
		}
		hours = h
		parts = parts[1:]
	case len(parts) == 2:
	default:
		return 0, fmt.Errorf("invalid timestamp format: expected HH:MM:SS.mmm")
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes: %w", err)
	}

	secondParts := strings.Split(parts[1], ".")
	if len(secondParts) != 2 {
		return 0, fmt.Errorf("invalid seconds format: missing milliseconds")
	}

	seconds, err := strconv.Atoi(secondParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds: %w", err)
	}

	milliseconds, err := strconv.Atoi(secondParts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds: %w", err)
	}

	duration := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond

	return duration, nil
}
