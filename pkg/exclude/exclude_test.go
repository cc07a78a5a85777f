package exclude

import "testing"

func TestRules_MatchesFile_Extensions(t *testing.T) {
	rules := NewRules([]string{".png", "JPG", ".zip"}, nil, nil)

	tests := []struct {
		path     string
		expected bool
	}{
		{"diagram.png", true},
		{"assets/DIAGRAM.PNG", true},
		{"photo.jpg", true},
		{"archive.zip", true},
		{"main.go", false},
		{"png", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := rules.MatchesFile(tt.path); got != tt.expected {
				t.Errorf("MatchesFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestRules_MatchesFile_Filenames(t *testing.T) {
	rules := NewRules(nil, nil, []string{".DS_Store", "Dockerfile"})

	if !rules.MatchesFile("sub/dir/.DS_Store") {
		t.Error("expected .DS_Store to match at any depth")
	}
	if !rules.MatchesFile("Dockerfile") {
		t.Error("expected Dockerfile to match")
	}
	if rules.MatchesFile("Dockerfile.dev") {
		t.Error("expected Dockerfile.dev not to match (exact names only)")
	}
}

func TestRules_MatchesDir(t *testing.T) {
	rules := NewRules(nil, []string{"node_modules", "dist"}, nil)

	tests := []struct {
		path     string
		expected bool
	}{
		{"node_modules", true},
		{"project/node_modules", true},
		{"project/deep/nested/dist", true},
		{"project/src", false},
		{"distant", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := rules.MatchesDir(tt.path); got != tt.expected {
				t.Errorf("MatchesDir(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewRules_NormalizesEntries(t *testing.T) {
	rules := NewRules([]string{"png", " .Gif ", ""}, []string{" venv ", ""}, nil)

	if !rules.MatchesFile("a.png") {
		t.Error("expected dotless extension entry to gain a leading dot")
	}
	if !rules.MatchesFile("b.gif") {
		t.Error("expected extension matching to ignore case and surrounding space")
	}
	if !rules.MatchesDir("venv") {
		t.Error("expected folder entry to be trimmed")
	}
}
