package transcription

import (
	"testing"
	"time"
)

// rollingCaptionsVTT is the shape of a YouTube auto-generated (kind=asr)
// track: each line is shown word by word, held by a 10ms bridge cue, then
// repeated above the next line.
const rollingCaptionsVTT = "WEBVTT\nKind: captions\nLanguage: en\n\n" +
	"00:00:00.160 --> 00:00:02.950 align:start position:0%\n" +
	"we<00:00:00.640><c> are</c><00:00:00.880><c> live</c>\n\n" +
	"00:00:02.950 --> 00:00:02.960 align:start position:0%\n" +
	"we are live\n \n\n" +
	"00:00:02.960 --> 00:00:05.270 align:start position:0%\n" +
	"we are live\n" +
	"rock<00:00:03.200><c> and</c><00:00:03.500><c> roll</c>\n\n" +
	"00:00:05.270 --> 00:00:05.280 align:start position:0%\n" +
	"rock and roll\n \n"

func TestParseVTT(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name: "basic vtt",
			content: `WEBVTT

00:00:01.000 --> 00:00:04.000
Hello, this is the first subtitle

00:00:04.100 --> 00:00:08.000
This is the second subtitle`,
			want: []string{"Hello, this is the first subtitle", "This is the second subtitle"},
		},
		{
			name: "multi-line subtitle",
			content: `WEBVTT

00:00:01.000 --> 00:00:04.000
Hello, this is
a multi-line subtitle

00:00:04.100 --> 00:00:08.000
Second entry`,
			want: []string{"Hello, this is a multi-line subtitle", "Second entry"},
		},
		{
			name:    "invalid header",
			content: "NOT A VTT FILE",
			wantErr: true,
		},
		{
			name: "empty lines between entries",
			content: `WEBVTT


00:00:01.000 --> 00:00:04.000
First entry


00:00:04.100 --> 00:00:08.000
Second entry`,
			want: []string{"First entry", "Second entry"},
		},
		{
			name: "youtube header, settings and inline tags",
			content: "WEBVTT\nKind: captions\nLanguage: en\n\n" +
				"00:00:00.160 --> 00:00:02.950 align:start position:0%\n" +
				"we<00:00:00.640><c> are</c><00:00:00.880><c> live</c>\n\n" +
				"00:00:02.950 --> 00:00:02.960 align:start position:0%\n \n\n" +
				"00:00:02.960 --> 00:00:05.000\nrock &amp; roll",
			want: []string{"we are live", "rock & roll"},
		},
		{
			name:    "rolling auto-generated captions",
			content: rollingCaptionsVTT,
			want:    []string{"we are live", "rock and roll"},
		},
		{
			name:    "repeated line inside a cue",
			content: "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nhey\nhey\nyou",
			want:    []string{"hey you"},
		},
		{
			name:    "cue identifiers, notes and CRLF",
			content: "WEBVTT\r\n\r\nNOTE a comment\r\n\r\nintro\r\n01:02.500 --> 01:04.000\r\nShort timestamps\r\n",
			want:    []string{"Short timestamps"},
		},
		{
			name:    "bad timestamp",
			content: "WEBVTT\n\n1:00:01.000 --> 00:00:04.000\nbroken",
			wantErr: true,
		},
		{
			name:    "header only",
			content: "WEBVTT",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := ParseVTT(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseVTT() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(segments) != len(tt.want) {
				t.Fatalf("ParseVTT() got %d segments, want %d", len(segments), len(tt.want))
			}
			for i, seg := range segments {
				if seg.Text != tt.want[i] {
					t.Errorf("segment %d text = %q, want %q", i, seg.Text, tt.want[i])
				}
				if seg.Number != i+1 {
					t.Errorf("segment %d number = %d, want %d", i, seg.Number, i+1)
				}
			}
		})
	}
}

func TestParseVTTTimings(t *testing.T) {
	segments, err := ParseVTT("WEBVTT\n\n00:01:02.500 --> 00:01:04.250 line:90%\nhello")
	if err != nil {
		t.Fatalf("ParseVTT() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if want := time.Minute + 2500*time.Millisecond; segments[0].Start != want {
		t.Errorf("Start = %v, want %v", segments[0].Start, want)
	}
	if want := time.Minute + 4250*time.Millisecond; segments[0].End != want {
		t.Errorf("End = %v, want %v", segments[0].End, want)
	}
}

func TestParseVTTTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      time.Duration
		wantErr   bool
	}{
		{
			name:      "zero timestamp",
			timestamp: "00:00:00.000",
			want:      0,
		},
		{
			name:      "one second",
			timestamp: "00:00:01.000",
			want:      time.Second,
		},
		{
			name:      "with hours",
			timestamp: "01:00:00.000",
			want:      time.Hour,
		},
		{
			name:      "with milliseconds",
			timestamp: "00:00:00.500",
			want:      500 * time.Millisecond,
		},
		{
			name:      "complex time",
			timestamp: "01:23:45.678",
			want:      1*time.Hour + 23*time.Minute + 45*time.Second + 678*time.Millisecond,
		},
		{
			name:      "short form",
			timestamp: "23:45.678",
			want:      23*time.Minute + 45*time.Second + 678*time.Millisecond,
		},
		{
			name:      "invalid format",
			timestamp: "1:23:45.678",
			wantErr:   true,
		},
		{
			name:      "missing milliseconds",
			timestamp: "00:00:01",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVTTTimestamp(tt.timestamp)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseVTTTimestamp() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseVTTTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}
