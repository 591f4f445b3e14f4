package downloads

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare doi",
			text: "This article: 10.1016/j.joms.2024.01.001 was published online.",
			want: "10.1016/j.joms.2024.01.001",
		},
		{
			name: "trailing punctuation stripped",
			text: "see https://doi.org/10.1016/j.joms.2024.01.001.",
			want: "10.1016/j.joms.2024.01.001",
		},
		{
			name: "no doi",
			text: "Journal of Oral Surgery, Volume 12",
			want: "",
		},
		{
			name: "too short to be real",
			text: "10.1/x",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanDir_SkipsNonPDFs(t *testing.T) {
	dir := t.TempDir()

	// A text file and a bogus .pdf: neither yields a DOI, neither errors.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("10.1016/j.joms.2024.01.001"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	dois, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(dois) != 0 {
		t.Errorf("ScanDir() = %v, want empty set", dois)
	}
}

func TestScanDir_MissingDirectory(t *testing.T) {
	if _, err := ScanDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ScanDir() error = nil, want error for missing directory")
	}
}
