package services

import (
	"strings"
	"testing"
	"time"

	"coverletter/generator/internal/models"
)

var letterDate = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"blank lines", "First.\n\nSecond.", []string{"First.", "Second."}},
		{"single newline fallback", "First.\nSecond.\nThird.", []string{"First.", "Second.", "Third."}},
		{"mixed keeps single newlines inside", "A\n\nB\nC", []string{"A", "B\nC"}},
		{"crlf", "A\r\n\r\nB", []string{"A", "B"}},
		{"blank segments dropped", "\n\nA\n\n\n\nB\n\n", []string{"A", "B"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitParagraphs(tt.text)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("SplitParagraphs(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLayoutBlockOrder(t *testing.T) {
	letter := models.GeneratedLetter{
		CoverLetter: "Paragraph one.\n\nParagraph two.",
		CompanyName: "Acme",
		PersonalInfo: models.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			LinkedIn: "linkedin.com/in/jane",
		},
	}

	doc := Layout(letter, letterDate)

	var got []string
	for _, b := range doc.Blocks {
		if b.Kind == BlockParagraph {
			got = append(got, string(b.Role)+"="+b.Text)
		}
	}
	want := []string{
		"sender=Jane Doe",
		"contact=jane@example.com",
		"contact=LinkedIn: linkedin.com/in/jane",
		"date=March 05, 2024",
		"recipient=Hiring Manager",
		"recipient=Acme",
		"salutation=Dear Hiring Manager at Acme,",
		"body=Paragraph one.",
		"body=Paragraph two.",
		"closing=Sincerely,",
		"signature=Jane Doe",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("unexpected layout:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	if len(doc.BodyParagraphs()) != 2 {
		t.Errorf("expected 2 body paragraphs, got %d", len(doc.BodyParagraphs()))
	}
	if !doc.Blocks[0].Style.Bold || doc.Blocks[0].Style.FontSize != senderFontSize {
		t.Errorf("expected bold sender line, got %+v", doc.Blocks[0].Style)
	}
}

func TestLayoutWithoutCompanyOrName(t *testing.T) {
	doc := Layout(models.GeneratedLetter{CoverLetter: "Hello."}, letterDate)

	var recipients, salutations, senders, signatures []string
	for _, b := range doc.Blocks {
		switch b.Role {
		case RoleRecipient:
			recipients = append(recipients, b.Text)
		case RoleSalutation:
			salutations = append(salutations, b.Text)
		case RoleSender:
			senders = append(senders, b.Text)
		case RoleSignature:
			signatures = append(signatures, b.Text)
		}
	}

	if len(recipients) != 1 || recipients[0] != "Hiring Manager" {
		t.Errorf("expected only the generic recipient, got %q", recipients)
	}
	if len(salutations) != 1 || salutations[0] != "Dear Hiring Manager," {
		t.Errorf("expected generic salutation, got %q", salutations)
	}
	if len(senders) != 0 || len(signatures) != 0 {
		t.Errorf("expected no sender or signature, got %q %q", senders, signatures)
	}
}

func TestLayoutEmptyLetterUsesPlaceholder(t *testing.T) {
	doc := Layout(models.GeneratedLetter{CoverLetter: " \n\n "}, letterDate)

	body := doc.BodyParagraphs()
	if len(body) != 1 || body[0].Role != RolePlaceholder || body[0].Text != placeholderText {
		t.Fatalf("expected a single placeholder paragraph, got %+v", body)
	}
	for _, b := range doc.Blocks {
		if b.Role == RoleBody {
			t.Errorf("unexpected body block %q", b.Text)
		}
	}
}

func TestLayoutSpacers(t *testing.T) {
	doc := Layout(models.GeneratedLetter{CoverLetter: "One.\n\nTwo."}, letterDate)

	for i, b := range doc.Blocks {
		if b.Kind == BlockSpacer && b.Height <= 0 {
			t.Errorf("spacer %d has no height", i)
		}
		if b.Role == RoleBody && (i+1 >= len(doc.Blocks) || doc.Blocks[i+1].Kind != BlockSpacer) {
			t.Errorf("body paragraph %d is not followed by a spacer", i)
		}
	}
}
