package services

import (
	"log"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coverletter/generator/internal/models"
)

const (
	aboutMeLabel  = "About me:"
	resumeLabel   = "Resume text:"
	projectsLabel = "My Projects:"
)

// Fields rendered in the letter header but kept out of the prompt narrative.
var headerOnlyFields = map[string]bool{
	"address":  true,
	"linkedin": true,
	"website":  true,
}

// BuildPersonalInfoContext renders the "About me" block. Empty values and
// header-only fields never produce a line.
func BuildPersonalInfoContext(info models.PersonalInfo) string {
	caser := cases.Title(language.English)

	var lines []string
	for _, field := range info.Fields() {
		value := strings.TrimSpace(field.Value)
		if value == "" || headerOnlyFields[field.Key] {
			continue
		}
		lines = append(lines, caser.String(field.Key)+": "+value)
	}

	if len(lines) == 0 {
		return ""
	}
	return aboutMeLabel + "\n" + strings.Join(lines, "\n") + "\n"
}

func BuildResumeContext(resumeText string) string {
	resumeText = CleanText(resumeText)
	if resumeText == "" {
		return ""
	}
	return resumeLabel + "\n" + resumeText + "\n"
}

// LoadProjects reads the projects asset and extracts the named array. Any failure
// yields an empty block.
func LoadProjects(path, declaration string) string {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Projects file unavailable, continuing without projects: %v", err)
		return ""
	}

	projects, ok := ExtractProjects(string(data), declaration)
	if !ok {
		log.Printf("⚠️  No %q array found in %s", declaration, path)
		return ""
	}
	return projects
}

// ExtractProjects finds `<declaration> = [` (or `<declaration>: [`) in source and
// returns the balanced array literal prefixed with the projects label. Brackets inside
// quoted strings and comments are ignored.
func ExtractProjects(source, declaration string) (string, bool) {
	if declaration == "" {
		return "", false
	}

	for offset := 0; offset < len(source); {
		idx := strings.Index(source[offset:], declaration)
		if idx < 0 {
			return "", false
		}
		start := offset + idx
		offset = start + len(declaration)

		if start > 0 && isIdentByte(source[start-1]) {
			continue
		}
		open, ok := arrayStartAfter(source, offset)
		if !ok {
			continue
		}

		end, ok := matchBracket(source, open)
		if !ok {
			return "", false
		}
		return projectsLabel + "\n" + source[open:end+1], true
	}

	return "", false
}

// arrayStartAfter expects optional whitespace, '=' or ':', optional whitespace, then '['.
func arrayStartAfter(source string, pos int) (int, bool) {
	if pos < len(source) && isIdentByte(source[pos]) {
		return 0, false
	}
	pos = skipSpace(source, pos)
	if pos >= len(source) || (source[pos] != '=' && source[pos] != ':') {
		return 0, false
	}
	pos = skipSpace(source, pos+1)
	if pos >= len(source) || source[pos] != '[' {
		return 0, false
	}
	return pos, true
}

// matchBracket returns the index of the ']' that balances the '[' at open.
func matchBracket(source string, open int) (int, bool) {
	depth := 0
	var quote byte

	for i := open; i < len(source); i++ {
		c := source[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		if c == '/' && i+1 < len(source) {
			switch source[i+1] {
			case '/':
				if nl := strings.IndexByte(source[i:], '\n'); nl >= 0 {
					i += nl
				} else {
					i = len(source)
				}
				continue
			case '*':
				end := strings.Index(source[i+2:], "*/")
				if end < 0 {
					return 0, false
				}
				i += end + 3
				continue
			}
		}

		switch c {
		case '"', '\'', '`':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\n' || s[pos] == '\r') {
		pos++
	}
	return pos
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
