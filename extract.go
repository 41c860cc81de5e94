package main

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractResumeText converts an uploaded resume into plain text based on
// its MIME type. Parameters after a semicolon (charset) are ignored.
func ExtractResumeText(mime string, data []byte) (string, error) {
	mime = strings.ToLower(strings.TrimSpace(strings.SplitN(mime, ";", 2)[0]))
	switch mime {
	case "text/plain":
		return string(data), nil
	case "application/pdf":
		return extractPDFText(bytes.NewReader(data))
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func extractPDFText(reader io.ReaderAt) (string, error) {
	pdfReader, err := pdf.NewReader(reader, lenReader(reader))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	text := stripWordMarkup(doc.Editable().GetContent())
	// hyperlink URLs live in the rels part, not in document.xml; resumes
	// often carry LinkedIn only as a link target
	for _, url := range docxLinkedInLinks(data) {
		text += "\n" + url + "\n"
	}
	return text, nil
}

// docxLinkedInLinks pulls LinkedIn hyperlink targets out of
// word/_rels/document.xml.rels. A docx without a readable rels part
// yields none; the document text already extracted is kept either way.
func docxLinkedInLinks(data []byte) []string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	var rels struct {
		Relationships []struct {
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	for _, f := range zr.File {
		if f.Name != "word/_rels/document.xml.rels" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		err = xml.NewDecoder(rc).Decode(&rels)
		rc.Close()
		if err != nil {
			return nil
		}
		break
	}
	var links []string
	for _, rel := range rels.Relationships {
		if strings.Contains(rel.Type, "hyperlink") && strings.Contains(strings.ToLower(rel.Target), "linkedin") {
			links = append(links, rel.Target)
		}
	}
	return links
}

var wordTagRe = regexp.MustCompile(`<[^>]+>`)

// stripWordMarkup flattens WordprocessingML into plain text. Paragraph
// closers become newlines so the extractors still see line structure.
func stripWordMarkup(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = wordTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

func lenReader(r io.ReaderAt) int64 {
	switch v := r.(type) {
	case *bytes.Reader:
		return int64(v.Len())
	default:
		return 0
	}
}
