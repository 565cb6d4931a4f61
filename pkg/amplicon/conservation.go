package amplicon

// BuildConsDictList converts a window frequency table into one base-count map
// per window position, e.g. [{'A':9,'G':1}, {'T':10}, ...]. Windows shorter
// than mcpLen are excluded from every position so truncated reads do not bias
// the counts. Symbols are not filtered here.
func BuildConsDictList(mcpCount SeqCount, mcpLen int) []map[byte]int {
	var consList = make([]map[byte]int, 0, mcpLen)
	for i := 0; i < mcpLen; i++ {
		var indexBase = make(map[byte]int)
		for mcp, count := range mcpCount {
			if len(mcp) < mcpLen {
				continue
			}
			indexBase[mcp[i]] += count
		}
		consList = append(consList, indexBase)
	}
	return consList
}
