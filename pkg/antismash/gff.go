package antismash

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Attribute is one key=value pair of a GFF3 attributes column; order matters.
type Attribute struct {
	Key   string
	Value string
}

// Line is a single GFF3 feature row.
type Line struct {
	SeqID      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Phase      string
	Attributes []Attribute
}

// AddAttribute appends a key=value pair, replacing an existing key in place.
func (l *Line) AddAttribute(key, value string) {
	for i := range l.Attributes {
		if l.Attributes[i].Key == key {
			l.Attributes[i].Value = value
			return
		}
	}
	l.Attributes = append(l.Attributes, Attribute{key, value})
}

// attributeString joins the non-empty pairs as k=v;k=v in insertion order.
func (l *Line) attributeString() string {
	var parts []string
	for _, a := range l.Attributes {
		if a.Value == "" {
			continue
		}
		parts = append(parts, a.Key+"="+a.Value)
	}
	return strings.Join(parts, ";")
}

// WriteGFF serializes the lines with the GFF3 version pragma.
func WriteGFF(w io.Writer, lines []Line) error {
	if _, err := fmt.Fprintln(w, "##gff-version 3"); err != nil {
		return err
	}
	for _, l := range lines {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			l.SeqID, l.Source, l.Type, l.Start, l.End, l.Score, l.Strand, l.Phase, l.attributeString())
		if err != nil {
			return err
		}
	}
	return nil
}

func sortStrings(s []string) []string {
	sort.Strings(s)
	return s
}
