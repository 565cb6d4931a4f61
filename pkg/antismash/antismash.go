// Package antismash converts antiSMASH JSON gene-cluster predictions into
// GFF3 interval rows.
package antismash

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	hmmDetectionModule  = "antismash.detection.hmm_detection"
	geneFunctionsModule = "antismash.detection.genefunctions"
)

type Analysis struct {
	Version string   `json:"version"`
	Records []Record `json:"records"`
}

type Record struct {
	ID       string                     `json:"id"`
	Features []Feature                  `json:"features"`
	Modules  map[string]json.RawMessage `json:"modules"`
}

type Feature struct {
	Type       string              `json:"type"`
	Location   string              `json:"location"`
	Qualifiers map[string][]string `json:"qualifiers"`
}

type hmmDetection struct {
	RuleResults struct {
		CDSByProtocluster [][]json.RawMessage `json:"cds_by_protocluster"`
	} `json:"rule_results"`
}

type protoclusterCDS struct {
	CDSName           string                     `json:"cds_name"`
	DefinitionDomains map[string]json.RawMessage `json:"definition_domains"`
}

type geneFunctions struct {
	Tools []struct {
		Tool     string `json:"tool"`
		BestHits map[string]struct {
			HitID    string  `json:"hit_id"`
			Bitscore float64 `json:"bitscore"`
			Evalue   float64 `json:"evalue"`
		} `json:"best_hits"`
	} `json:"tools"`
}

// Parse decodes a full antiSMASH result JSON.
func Parse(r io.Reader) (*Analysis, error) {
	var a Analysis
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("antismash parse: %w", err)
	}
	return &a, nil
}

var locRe = regexp.MustCompile(`\[<?(\d+):>?(\d+)\](?:\(([+-])\))?`)

// parseLocation splits an antiSMASH location such as "[310:472](+)" into its
// 0-based half-open interval and strand ("." when absent).
func parseLocation(loc string) (start, end int, strand string, err error) {
	m := locRe.FindStringSubmatch(loc)
	if m == nil {
		return 0, 0, "", fmt.Errorf("antismash: unparsable location %q", loc)
	}
	start, _ = strconv.Atoi(m[1])
	end, _ = strconv.Atoi(m[2])
	strand = "."
	if m[3] != "" {
		strand = m[3]
	}
	return start, end, strand, nil
}

// geneFunctionsValue reformats gene_functions qualifiers the way downstream
// tooling expects: comma-joined, spaces to underscores except after ':'/';'.
func geneFunctionsValue(funcs []string) string {
	v := strings.Join(funcs, ",")
	v = strings.ReplaceAll(v, " ", "_")
	v = strings.ReplaceAll(v, ":_", ":")
	v = strings.ReplaceAll(v, ";_", ";")
	return v
}

func first(q map[string][]string, key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// BuildGFF flattens the analysis into GFF3 lines: one "region" row per
// predicted cluster and, when the gene-functions module ran on the record,
// one CDS row per coding feature overlapping that region. cdsTag selects the
// qualifier used as the CDS identifier (typically "locus_tag").
func BuildGFF(a *Analysis, cdsTag string) ([]Line, error) {
	var (
		lines  []Line
		source = "antiSMASH:" + a.Version
	)

	for _, record := range a.Records {
		var (
			regionName  string
			regionStart int
			regionEnd   int
			cdsIdx      = make(map[string]int)
		)
		_, iterCDS := record.Modules[geneFunctionsModule]

		for _, feature := range record.Features {
			switch feature.Type {
			case "region":
				start, end, _, err := parseLocation(feature.Location)
				if err != nil {
					return nil, err
				}
				regionName = fmt.Sprintf("%s_region%s", record.ID, first(feature.Qualifiers, "region_number"))
				regionStart, regionEnd = start, end

				lines = append(lines, Line{
					SeqID:  record.ID,
					Source: source,
					Type:   "region",
					Start:  start + 1,
					End:    end,
					Score:  ".",
					Strand: ".",
					Phase:  ".",
					Attributes: []Attribute{
						{"ID", regionName},
						{"product", strings.Join(feature.Qualifiers["product"], ",")},
					},
				})

			case "CDS":
				if !iterCDS {
					continue
				}
				start, end, strand, err := parseLocation(feature.Location)
				if err != nil {
					return nil, err
				}
				// only CDS inside the current region belong to the cluster
				if regionName == "" || !(regionStart <= end && start <= regionEnd) {
					continue
				}

				locusTag := first(feature.Qualifiers, cdsTag)
				if locusTag == "" {
					return nil, fmt.Errorf("antismash: CDS at %s without %q qualifier", feature.Location, cdsTag)
				}
				asType := "other"
				if kinds := feature.Qualifiers["gene_kind"]; len(kinds) > 0 {
					asType = strings.Join(kinds, ",")
				}
				lines = append(lines, Line{
					SeqID:  record.ID,
					Source: source,
					Type:   "CDS",
					Start:  start + 1,
					End:    end,
					Score:  ".",
					Strand: strand,
					Phase:  ".",
					Attributes: []Attribute{
						{"ID", locusTag},
						{"as_type", asType},
						{"gene_functions", geneFunctionsValue(feature.Qualifiers["gene_functions"])},
						{"Parent", regionName},
					},
				})
				cdsIdx[locusTag] = len(lines) - 1
			}
		}

		// indices, not pointers: appends above may have moved the backing array
		if err := annotateProtoclusters(record, lines, cdsIdx); err != nil {
			return nil, err
		}
		annotateSmcogs(record, lines, cdsIdx)
	}

	return lines, nil
}

// annotateProtoclusters adds as_gene_clusters attributes from the HMM
// detection module's per-protocluster CDS lists.
func annotateProtoclusters(record Record, lines []Line, cdsIdx map[string]int) error {
	raw, ok := record.Modules[hmmDetectionModule]
	if !ok {
		return nil
	}
	var det hmmDetection
	if err := json.Unmarshal(raw, &det); err != nil {
		return fmt.Errorf("antismash: %s: %w", hmmDetectionModule, err)
	}
	if len(det.RuleResults.CDSByProtocluster) == 0 {
		return nil
	}
	pair := det.RuleResults.CDSByProtocluster[0]
	if len(pair) < 2 {
		return nil
	}
	var cdsList []protoclusterCDS
	if err := json.Unmarshal(pair[1], &cdsList); err != nil {
		return fmt.Errorf("antismash: %s: %w", hmmDetectionModule, err)
	}
	for _, cds := range cdsList {
		if cds.CDSName == "" {
			continue
		}
		i, ok := cdsIdx[cds.CDSName]
		if !ok {
			continue
		}
		var clusters []string
		for domain := range cds.DefinitionDomains {
			clusters = append(clusters, domain)
		}
		lines[i].AddAttribute("as_gene_clusters", strings.Join(sortStrings(clusters), ","))
	}
	return nil
}

// annotateSmcogs attaches smCOG best-hit notes from the gene-functions module.
func annotateSmcogs(record Record, lines []Line, cdsIdx map[string]int) {
	raw, ok := record.Modules[geneFunctionsModule]
	if !ok {
		return
	}
	var gf geneFunctions
	if err := json.Unmarshal(raw, &gf); err != nil {
		return
	}
	for _, tool := range gf.Tools {
		if tool.Tool != "smcogs" || len(tool.BestHits) == 0 {
			continue
		}
		for locusTag, hit := range tool.BestHits {
			i, ok := cdsIdx[locusTag]
			if !ok {
				continue
			}
			hitID, hitDesc, _ := strings.Cut(hit.HitID, ":")
			hitDesc = strings.ReplaceAll(hitDesc, " ", "_")
			lines[i].AddAttribute("as_notes", fmt.Sprintf(
				"smCOG:%s:%s(Score:%g;E-value:%g)", hitID, hitDesc, hit.Bitscore, hit.Evalue))
		}
	}
}
