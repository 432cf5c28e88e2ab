package learning

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"git keyword", "Always run git status before committing", CategoryGit},
		{"gh keyword", "use gh pr create with --fill", CategoryGit},
		{"git wins over fix", "fix by running git stash first", CategoryGit},
		{"flutter", "flutter pub get after editing pubspec", CategoryFlutter},
		{"dart", "dart format before pushing", CategoryFlutter},
		{"flutter wins over error", "flutter error overlay hides logs", CategoryFlutter},
		{"error", "read the error output fully", CategoryBugFix},
		{"fix", "prefer a fix at the root cause", CategoryBugFix},
		{"case sensitive git", "Git rebase is dangerous", CategoryGeneral},
		{"case sensitive flutter", "Flutter builds are slow", CategoryGeneral},
		{"git needs trailing space", "github actions cache", CategoryGeneral},
		{"general", "keep functions small", CategoryGeneral},
		{"empty", "", CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.text); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategoryTag(t *testing.T) {
	if got := CategoryBugFix.Tag(); got != "**Bug Fixes**:" {
		t.Errorf("Tag() = %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("git/github"); !ok || c != CategoryGit {
		t.Errorf("ParseCategory(git/github) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("Rust"); ok {
		t.Error("expected Rust to be rejected")
	}
}
