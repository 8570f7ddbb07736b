package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	filenamePrefix    = "cover_letter_"
	filenameExt       = ".pdf"
	maxFilenameLength = 54
	maxSlugLength     = maxFilenameLength - len(filenamePrefix) - len(filenameExt)
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9-]+`)
	separatorRuns       = regexp.MustCompile(`[-_]{2,}`)
)

// SanitizeCompanyName turns a company name into a filename slug of at most
// maxSlugLength ASCII letters, digits, '-' and '_'. It may return "".
func SanitizeCompanyName(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		folded = name
	}

	slug := unsafeFilenameChars.ReplaceAllString(folded, "_")
	slug = separatorRuns.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_-")

	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "_-")
	}
	return slug
}

// CoverLetterFilename names the artifact after the company, or after a random
// token when no usable company name remains.
func CoverLetterFilename(companyName string) string {
	slug := SanitizeCompanyName(companyName)
	if slug == "" {
		slug = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return filenamePrefix + slug + filenameExt
}
