package services

import (
	"strings"
	"time"

	"coverletter/generator/internal/models"
)

const (
	dateLayout       = "January 02, 2006"
	placeholderText  = "No cover letter content provided."
	normalFontSize   = 10
	senderFontSize   = 12
	sectionSpacer    = 20
	paragraphSpacer  = 10
	closingSpacer    = 15
	signatureSpacer  = 30
	recipientTitle   = "Hiring Manager"
	closingSalute    = "Sincerely,"
	genericSalute    = "Dear Hiring Manager,"
	companySaluteFmt = "Dear Hiring Manager at "
)

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockSpacer
)

type BlockRole string

const (
	RoleSender      BlockRole = "sender"
	RoleContact     BlockRole = "contact"
	RoleDate        BlockRole = "date"
	RoleRecipient   BlockRole = "recipient"
	RoleSalutation  BlockRole = "salutation"
	RoleBody        BlockRole = "body"
	RolePlaceholder BlockRole = "placeholder"
	RoleClosing     BlockRole = "closing"
	RoleSignature   BlockRole = "signature"
	RoleSpacer      BlockRole = "spacer"
)

type Alignment string

const (
	AlignLeft    Alignment = "L"
	AlignCenter  Alignment = "C"
	AlignRight   Alignment = "R"
	AlignJustify Alignment = "J"
)

type BlockStyle struct {
	Bold     bool
	FontSize float64
	Align    Alignment
}

// Block is one paragraph or spacer. Height is the spacer height in points.
type Block struct {
	Kind   BlockKind
	Role   BlockRole
	Text   string
	Style  BlockStyle
	Height float64
}

type LetterDocument struct {
	Blocks []Block
}

// BodyParagraphs returns the paragraphs produced from the generated text.
func (d *LetterDocument) BodyParagraphs() []Block {
	var body []Block
	for _, b := range d.Blocks {
		if b.Role == RoleBody || b.Role == RolePlaceholder {
			body = append(body, b)
		}
	}
	return body
}

var normalStyle = BlockStyle{FontSize: normalFontSize, Align: AlignLeft}

// SplitParagraphs splits on blank lines, falling back to single newlines when the
// text holds only one blank-line segment.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	segments := strings.Split(text, "\n\n")
	if len(segments) == 1 {
		segments = strings.Split(text, "\n")
	}

	var paragraphs []string
	for _, segment := range segments {
		if segment = strings.TrimSpace(segment); segment != "" {
			paragraphs = append(paragraphs, segment)
		}
	}
	return paragraphs
}

// Layout builds the business letter block sequence for letter dated date.
func Layout(letter models.GeneratedLetter, date time.Time) *LetterDocument {
	doc := &LetterDocument{}
	info := letter.PersonalInfo
	company := strings.TrimSpace(letter.CompanyName)
	name := strings.TrimSpace(info.Name)

	if name != "" {
		doc.paragraph(RoleSender, name, BlockStyle{Bold: true, FontSize: senderFontSize, Align: AlignLeft})
	}
	for _, line := range contactLines(info) {
		doc.paragraph(RoleContact, line, normalStyle)
	}

	doc.spacer(sectionSpacer)
	doc.paragraph(RoleDate, date.Format(dateLayout), normalStyle)
	doc.spacer(sectionSpacer)

	doc.paragraph(RoleRecipient, recipientTitle, normalStyle)
	if company != "" {
		doc.paragraph(RoleRecipient, company, normalStyle)
	}
	doc.spacer(sectionSpacer)

	if company != "" {
		doc.paragraph(RoleSalutation, companySaluteFmt+company+",", normalStyle)
	} else {
		doc.paragraph(RoleSalutation, genericSalute, normalStyle)
	}
	doc.spacer(paragraphSpacer)

	paragraphs := SplitParagraphs(letter.CoverLetter)
	if len(paragraphs) == 0 {
		doc.paragraph(RolePlaceholder, placeholderText, normalStyle)
		doc.spacer(paragraphSpacer)
	}
	for _, paragraph := range paragraphs {
		doc.paragraph(RoleBody, paragraph, normalStyle)
		doc.spacer(paragraphSpacer)
	}

	doc.spacer(closingSpacer)
	doc.paragraph(RoleClosing, closingSalute, normalStyle)
	doc.spacer(signatureSpacer)

	if name != "" {
		doc.paragraph(RoleSignature, name, normalStyle)
	}

	return doc
}

func contactLines(info models.PersonalInfo) []string {
	var lines []string
	add := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			lines = append(lines, label+value)
		}
	}

	add("", info.Email)
	add("", info.Phone)
	add("", info.Address)
	add("LinkedIn: ", info.LinkedIn)
	add("Website: ", info.Website)
	return lines
}

func (d *LetterDocument) paragraph(role BlockRole, text string, style BlockStyle) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockParagraph, Role: role, Text: text, Style: style})
}

func (d *LetterDocument) spacer(height float64) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockSpacer, Role: RoleSpacer, Height: height})
}
