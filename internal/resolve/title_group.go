package resolve

// groupTitles builds one logical entry per stack, then one per standalone
// record, preserving detection and input order.
func groupTitles(p partition, files []*FileRecord, resolver *MetadataResolver, rootHint string) []*LogicalEntry {
	entries := make([]*LogicalEntry, 0, len(p.stacks)+len(p.standalone))

	for _, s := range p.stacks {
		refined := make([]*FileRecord, 0, len(s.Files))
		for _, ref := range s.Files {
			r := resolver.Resolve(recordForRef(files, ref), s.IsDirectoryStack, false, rootHint)
			if r == nil {
				continue
			}
			refined = append(refined, r)
		}
		if len(refined) == 0 {
			continue
		}
		entries = append(entries, &LogicalEntry{
			Name:  s.Name,
			Year:  refined[0].Year,
			Files: refined,
		})
	}

	for _, f := range p.standalone {
		r := resolver.Resolve(f, false, true, rootHint)
		if r == nil {
			continue
		}
		entries = append(entries, &LogicalEntry{
			Name:      r.DisplayName,
			Year:      r.Year,
			Files:     []*FileRecord{r},
			ExtraKind: r.ExtraKind,
		})
	}

	return entries
}
