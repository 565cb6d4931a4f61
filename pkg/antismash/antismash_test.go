package antismash

import (
	"bytes"
	"strings"
	"testing"
)

const testJSON = `{
  "version": "7.1.0",
  "records": [
    {
      "id": "NZ_CP042324.1",
      "features": [
        {
          "type": "region",
          "location": "[100:2000]",
          "qualifiers": {
            "region_number": ["1"],
            "product": ["lanthipeptide-class-i"]
          }
        },
        {
          "type": "CDS",
          "location": "[310:472](+)",
          "qualifiers": {
            "locus_tag": ["CDS_1"],
            "gene_kind": ["biosynthetic"],
            "gene_functions": ["biosynthetic (rule-based-clusters) lanthipeptide: LANC_like"]
          }
        },
        {
          "type": "CDS",
          "location": "[3000:3500](-)",
          "qualifiers": {
            "locus_tag": ["CDS_out"]
          }
        }
      ],
      "modules": {
        "antismash.detection.genefunctions": {
          "tools": [
            {
              "tool": "smcogs",
              "best_hits": {
                "CDS_1": {"hit_id": "SMCOG1030:serine/threonine_protein_kinase", "bitscore": 173.1, "evalue": 1.1e-52}
              }
            }
          ]
        },
        "antismash.detection.hmm_detection": {
          "rule_results": {
            "cds_by_protocluster": [
              [
                {"protocluster_number": 1},
                [
                  {"cds_name": "CDS_1", "definition_domains": {"LANC_like": ["x"], "Lant_dehydr_N": ["y"]}}
                ]
              ]
            ]
          }
        }
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	a, err := Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if a.Version != "7.1.0" {
		t.Errorf("Version = %q; want \"7.1.0\"", a.Version)
	}
	if len(a.Records) != 1 {
		t.Fatalf("len(Records) = %d; want 1", len(a.Records))
	}
	if got := len(a.Records[0].Features); got != 3 {
		t.Errorf("len(Features) = %d; want 3", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse(strings.NewReader("{not json")); err == nil {
		t.Error("Expected an error, but got nil")
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		loc    string
		start  int
		end    int
		strand string
	}{
		{"[310:472](+)", 310, 472, "+"},
		{"[0:228](-)", 0, 228, "-"},
		{"[<5:>90](+)", 5, 90, "+"},
		{"[100:2000]", 100, 2000, "."},
	}
	for _, tt := range tests {
		start, end, strand, err := parseLocation(tt.loc)
		if err != nil {
			t.Errorf("parseLocation(%q): expected no error, but got: %v", tt.loc, err)
			continue
		}
		if start != tt.start || end != tt.end || strand != tt.strand {
			t.Errorf("parseLocation(%q) = %d, %d, %q; want %d, %d, %q",
				tt.loc, start, end, strand, tt.start, tt.end, tt.strand)
		}
	}

	if _, _, _, err := parseLocation("join{[1:2], [3:4]}x"); err != nil {
		t.Errorf("Expected first interval of a join to parse, but got: %v", err)
	}
	if _, _, _, err := parseLocation("no location"); err == nil {
		t.Error("Expected an error, but got nil")
	}
}

func TestGeneFunctionsValue(t *testing.T) {
	got := geneFunctionsValue([]string{"biosynthetic (rule-based-clusters) lanthipeptide: LANC_like"})
	want := "biosynthetic_(rule-based-clusters)_lanthipeptide:LANC_like"
	if got != want {
		t.Errorf("geneFunctionsValue = %q; want %q", got, want)
	}
	if got := geneFunctionsValue(nil); got != "" {
		t.Errorf("geneFunctionsValue(nil) = %q; want \"\"", got)
	}
}

func TestBuildGFF(t *testing.T) {
	a, err := Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	lines, err := BuildGFF(a, "locus_tag")
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	// region + in-region CDS; the CDS outside the region is dropped
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d; want 2", len(lines))
	}

	region := lines[0]
	if region.Type != "region" || region.Start != 101 || region.End != 2000 {
		t.Errorf("region = %+v; want region 101..2000", region)
	}
	if got := region.attributeString(); got != "ID=NZ_CP042324.1_region1;product=lanthipeptide-class-i" {
		t.Errorf("region attributes = %q", got)
	}

	cds := lines[1]
	if cds.Type != "CDS" || cds.Start != 311 || cds.End != 472 || cds.Strand != "+" {
		t.Errorf("cds = %+v; want CDS 311..472 (+)", cds)
	}
	attrs := cds.attributeString()
	for _, want := range []string{
		"ID=CDS_1",
		"as_type=biosynthetic",
		"gene_functions=biosynthetic_(rule-based-clusters)_lanthipeptide:LANC_like",
		"Parent=NZ_CP042324.1_region1",
		"as_gene_clusters=LANC_like,Lant_dehydr_N",
		"as_notes=smCOG:SMCOG1030:serine/threonine_protein_kinase(Score:173.1;E-value:1.1e-52)",
	} {
		if !strings.Contains(attrs, want) {
			t.Errorf("cds attributes %q missing %q", attrs, want)
		}
	}
}

func TestBuildGFFWithoutGeneFunctions(t *testing.T) {
	a := &Analysis{
		Version: "7.1.0",
		Records: []Record{{
			ID: "rec",
			Features: []Feature{
				{
					Type:       "region",
					Location:   "[0:100]",
					Qualifiers: map[string][]string{"region_number": {"1"}},
				},
				{
					Type:       "CDS",
					Location:   "[10:40](+)",
					Qualifiers: map[string][]string{"locus_tag": {"x"}},
				},
			},
		}},
	}
	lines, err := BuildGFF(a, "locus_tag")
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	// no gene-functions module on the record, so no CDS rows
	if len(lines) != 1 || lines[0].Type != "region" {
		t.Errorf("lines = %+v; want the region row only", lines)
	}
}

func TestBuildGFFMissingTag(t *testing.T) {
	a, err := Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if _, err := BuildGFF(a, "gene_id"); err == nil {
		t.Error("Expected an error for CDS without the tag qualifier, but got nil")
	}
}

func TestAddAttribute(t *testing.T) {
	l := &Line{}
	l.AddAttribute("ID", "a")
	l.AddAttribute("Parent", "p")
	l.AddAttribute("ID", "b")
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d; want 2", len(l.Attributes))
	}
	if l.Attributes[0].Value != "b" {
		t.Errorf("Attributes[0].Value = %q; want \"b\"", l.Attributes[0].Value)
	}
}

func TestWriteGFF(t *testing.T) {
	var buf bytes.Buffer
	lines := []Line{{
		SeqID:  "rec",
		Source: "antiSMASH:7.1.0",
		Type:   "region",
		Start:  1,
		End:    100,
		Score:  ".",
		Strand: ".",
		Phase:  ".",
		Attributes: []Attribute{
			{"ID", "rec_region1"},
			{"product", ""},
		},
	}}
	if err := WriteGFF(&buf, lines); err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	want := "##gff-version 3\nrec\tantiSMASH:7.1.0\tregion\t1\t100\t.\t.\t.\tID=rec_region1\n"
	if buf.String() != want {
		t.Errorf("WriteGFF output = %q; want %q", buf.String(), want)
	}
}
